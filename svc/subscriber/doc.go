// Package subscriber turns raw newsletter sign-ups into stored subscribers.
//
// ParseName and ParseEmail are the only way to obtain Name and Email values,
// so anything holding a NewSubscriber has passed validation. FromForm runs
// both parsers on a submitted Form, name first.
//
// Registrar.Register persists a NewSubscriber through a Storage with
// insert-if-absent semantics: the first registration of an email creates the
// record, later ones succeed without modifying it. Uniqueness is the storage
// engine's job (unique index, unique constraint, atomic script); the
// registrar takes no locks. Engines live in the mongostore, pgstore and
// redisstore subpackages; MemoryStorage serves tests and local runs.
//
// WelcomeMailer sends the welcome email. Callers invoke it only when
// Register reports that a record was created.
//
//	registrar := subscriber.NewRegistrar(store, subscriber.WithLogger(log))
//
//	sub, err := subscriber.FromForm(form)
//	if err != nil {
//		return err // ErrInvalidName or ErrInvalidEmail
//	}
//	created, err := registrar.Register(ctx, sub)
//	if err != nil {
//		return err // ErrStorage
//	}
//	if created {
//		_ = welcome.SendWelcome(ctx, sub)
//	}
package subscriber
