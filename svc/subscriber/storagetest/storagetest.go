// Package storagetest holds the behaviour every subscriber.Storage engine
// must share. Engine packages call Run from their own tests.
package storagetest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/newsletter/svc/subscriber"
)

// Concurrency is the number of parallel inserts of one email in
// TestConcurrentInsert.
const Concurrency = 32

// Factory returns an empty store. Each subtest calls it once, so a factory
// may hand out a fresh namespace per call.
type Factory func(t *testing.T) subscriber.Storage

// Run executes the shared storage contract against stores made by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("insert then find", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		rec := record("ursula_le_guin@gmail.com", "le guin")

		created, err := store.InsertIfAbsent(ctx, rec)
		require.NoError(t, err)
		assert.True(t, created)

		got, err := store.FindByEmail(ctx, rec.Email)
		require.NoError(t, err)
		assert.Equal(t, rec.Email, got.Email)
		assert.Equal(t, rec.Name, got.Name)
		assert.True(t, rec.Created.Equal(got.Created), "created: want %s, got %s", rec.Created, got.Created)
	})

	t.Run("repeat insert keeps the first record", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()
		first := record("octavia@example.com", "Octavia")
		second := record("octavia@example.com", "O. Butler")
		second.Created = first.Created.Add(time.Hour)

		created, err := store.InsertIfAbsent(ctx, first)
		require.NoError(t, err)
		require.True(t, created)

		created, err = store.InsertIfAbsent(ctx, second)
		require.NoError(t, err)
		assert.False(t, created)

		got, err := store.FindByEmail(ctx, first.Email)
		require.NoError(t, err)
		assert.Equal(t, "Octavia", got.Name)
		assert.True(t, first.Created.Equal(got.Created))
	})

	t.Run("find missing", func(t *testing.T) {
		store := newStore(t)
		_, err := store.FindByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, subscriber.ErrNotFound)
	})

	t.Run("emails are exact keys", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		for _, email := range []string{"a@example.com", "b@example.com"} {
			created, err := store.InsertIfAbsent(ctx, record(email, "same name"))
			require.NoError(t, err)
			assert.True(t, created, email)
		}
	})

	t.Run("concurrent insert", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		var inserted atomic.Int32
		g, gctx := errgroup.WithContext(ctx)
		for i := range Concurrency {
			g.Go(func() error {
				created, err := store.InsertIfAbsent(gctx, record("race@example.com", fmt.Sprintf("racer %d", i)))
				if created {
					inserted.Add(1)
				}
				return err
			})
		}
		require.NoError(t, g.Wait())
		assert.Equal(t, int32(1), inserted.Load(), "exactly one insert must win")

		_, err := store.FindByEmail(ctx, "race@example.com")
		assert.NoError(t, err)
	})
}

func record(email, name string) subscriber.Record {
	return subscriber.Record{
		Email:   email,
		Name:    name,
		Created: time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC),
	}
}
