// Package pgstore keeps subscribers in PostgreSQL. Uniqueness of email is
// enforced by the subscriptions_email_key constraint created by Migrations.
package pgstore

import (
	"context"
	"database/sql"

	"github.com/dmitrymomot/newsletter/pkg/pg"
	"github.com/dmitrymomot/newsletter/svc/subscriber"
)

const (
	insertQuery = `INSERT INTO subscriptions (email, name, created) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`
	selectQuery = `SELECT email, name, created FROM subscriptions WHERE email = $1`
)

// DB is the subset of *sql.DB the store needs.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
}

// Store implements subscriber.Storage.
type Store struct {
	db DB
}

// New panics when db is nil.
func New(db DB) *Store {
	if db == nil {
		panic("pgstore.New: nil db")
	}
	return &Store{db: db}
}

func (s *Store) InsertIfAbsent(ctx context.Context, rec subscriber.Record) (bool, error) {
	res, err := s.db.ExecContext(ctx, insertQuery, rec.Email, rec.Name, rec.Created)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (subscriber.Record, error) {
	var rec subscriber.Record
	err := s.db.QueryRowContext(ctx, selectQuery, email).Scan(&rec.Email, &rec.Name, &rec.Created)
	switch {
	case pg.IsNotFoundError(err):
		return subscriber.Record{}, subscriber.ErrNotFound
	case err != nil:
		return subscriber.Record{}, err
	}
	rec.Created = rec.Created.UTC()
	return rec, nil
}

// Healthcheck pings the database.
func (s *Store) Healthcheck(ctx context.Context) error {
	return pg.Healthcheck(sqlPinger{s.db})(ctx)
}

type sqlPinger struct {
	db DB
}

func (p sqlPinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}
