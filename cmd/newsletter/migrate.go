package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the storage schema and indexes",
		Long: "Applies the embedded goose migrations for postgres and ensures the unique\n" +
			"email index for mongo. Memory and redis need no setup.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate(cmd.Context())
		},
	}
}

func migrate(ctx context.Context) (err error) {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	log := newLogger(s)

	store, err := openStorage(ctx, s.driver, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		err = errors.Join(err, store.close(closeCtx))
	}()

	if err := store.migrate(ctx); err != nil {
		return err
	}
	log.InfoContext(ctx, "storage is up to date")
	return nil
}
