package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kanban-board-api/internal/config"
	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/repository"
)

// boardStore is the part of the board repository the commands need
type boardStore interface {
	LoadStrict(ctx context.Context) ([]domain.Board, error)
	Save(ctx context.Context, boards []domain.Board) error
	Backend() string
}

// storeOpener opens the store named by the config file at path. The returned func releases it.
type storeOpener func(ctx context.Context, path string) (boardStore, func() error, error)

func openConfiguredStore(ctx context.Context, path string) (boardStore, func() error, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	storage, err := repository.OpenStorage(ctx, cfg, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	return storage.Repository, storage.Close, nil
}

func newRootCmd(open storeOpener) *cobra.Command {
	root := &cobra.Command{
		Use:           "kanbanctl",
		Short:         "Manage the stored kanban board collection",
		Long:          "kanbanctl exports, imports and validates the board collection in the storage backend configured for the board API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "configs/config.yaml", "config file")

	root.AddCommand(
		newExportCmd(open),
		newImportCmd(open),
		newValidateCmd(open),
	)
	return root
}

// withStore opens the configured store for the duration of fn
func withStore(cmd *cobra.Command, open storeOpener, fn func(ctx context.Context, store boardStore) error) error {
	path, _ := cmd.Flags().GetString("config")
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, closeStore, err := open(ctx, path)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(ctx, store)
}
