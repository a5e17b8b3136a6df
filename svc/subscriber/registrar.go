package subscriber

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/newsletter/pkg/logger"
)

// Registrar records new subscribers idempotently.
type Registrar struct {
	store Storage
	now   func() time.Time
	log   *slog.Logger
}

// Option configures a Registrar.
type Option func(*Registrar)

// WithClock overrides the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("subscriber.WithClock: nil clock")
	}
	return func(r *Registrar) { r.now = now }
}

// WithLogger sets the logger used for registration events.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registrar) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistrar panics when store is nil.
func NewRegistrar(store Storage, opts ...Option) *Registrar {
	if store == nil {
		panic("subscriber.NewRegistrar: nil storage")
	}
	r := &Registrar{
		store: store,
		now:   time.Now,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores s unless its email is already registered and reports
// whether a new record was created. Repeats succeed without touching the
// stored record. Storage failures are wrapped with ErrStorage and are not
// retried.
func (r *Registrar) Register(ctx context.Context, s NewSubscriber) (bool, error) {
	// Millisecond precision is what every engine can store losslessly.
	rec := Record{
		Email:   s.Email.String(),
		Name:    s.Name.String(),
		Created: r.now().UTC().Truncate(time.Millisecond),
	}

	created, err := r.store.InsertIfAbsent(ctx, rec)
	if err != nil {
		return false, errors.Join(ErrStorage, err)
	}

	r.log.DebugContext(ctx, "subscriber registered",
		logger.Subscriber(rec.Email, rec.Name),
		slog.Bool("created", created),
	)
	return created, nil
}

// Lookup returns the stored record for email.
func (r *Registrar) Lookup(ctx context.Context, email Email) (Record, error) {
	rec, err := r.store.FindByEmail(ctx, email.String())
	switch {
	case errors.Is(err, ErrNotFound):
		return Record{}, err
	case err != nil:
		return Record{}, errors.Join(ErrStorage, err)
	}
	return rec, nil
}
