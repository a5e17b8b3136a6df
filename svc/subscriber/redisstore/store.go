// Package redisstore keeps each subscriber in a hash and indexes every email
// in a set. Inserts run as one Lua script, so the existence check and the
// write cannot interleave with another client.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	redisx "github.com/dmitrymomot/newsletter/pkg/redis"
	"github.com/dmitrymomot/newsletter/svc/subscriber"
)

// KEYS[1] record hash, KEYS[2] email index set.
// ARGV email, name, created.
var insertScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1], 'email', ARGV[1], 'name', ARGV[2], 'created', ARGV[3])
redis.call('SADD', KEYS[2], ARGV[1])
return 1
`)

const createdLayout = time.RFC3339Nano

// Store implements subscriber.Storage.
type Store struct {
	client redis.UniversalClient
	prefix string
}

// New returns a Store writing keys under prefix. An empty prefix is allowed.
func New(client redis.UniversalClient, prefix string) *Store {
	if client == nil {
		panic("redisstore.New: nil client")
	}
	return &Store{client: client, prefix: prefix}
}

// RecordKey is the hash holding the subscriber with the given email.
func (s *Store) RecordKey(email string) string {
	return s.key("subscriber:" + email)
}

// IndexKey is the set of every stored email.
func (s *Store) IndexKey() string {
	return s.key("subscribers")
}

func (s *Store) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + ":" + k
}

func (s *Store) InsertIfAbsent(ctx context.Context, rec subscriber.Record) (bool, error) {
	n, err := insertScript.Run(ctx, s.client,
		[]string{s.RecordKey(rec.Email), s.IndexKey()},
		rec.Email, rec.Name, rec.Created.UTC().Format(createdLayout),
	).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (subscriber.Record, error) {
	fields, err := s.client.HGetAll(ctx, s.RecordKey(email)).Result()
	if err != nil {
		return subscriber.Record{}, err
	}
	if len(fields) == 0 {
		return subscriber.Record{}, subscriber.ErrNotFound
	}

	created, err := time.Parse(createdLayout, fields["created"])
	if err != nil {
		return subscriber.Record{}, errors.Join(ErrCorruptRecord, fmt.Errorf("created %q: %w", fields["created"], err))
	}
	return subscriber.Record{
		Email:   fields["email"],
		Name:    fields["name"],
		Created: created.UTC(),
	}, nil
}

// Count returns the number of indexed emails.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.client.SCard(ctx, s.IndexKey()).Result()
}

// Healthcheck pings the server.
func (s *Store) Healthcheck(ctx context.Context) error {
	return redisx.Healthcheck(s.client)(ctx)
}
