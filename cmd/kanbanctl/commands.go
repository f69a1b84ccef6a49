package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/repository"
)

func newExportCmd(open storeOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored boards as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			return withStore(cmd, open, func(ctx context.Context, store boardStore) error {
				boards, err := store.LoadStrict(ctx)
				if err != nil {
					return fmt.Errorf("failed to load boards from %s: %w", store.Backend(), err)
				}
				payload, err := repository.EncodeBoards(boards)
				if err != nil {
					return err
				}

				var pretty bytes.Buffer
				if err := json.Indent(&pretty, payload, "", "  "); err != nil {
					return err
				}
				pretty.WriteByte('\n')

				if output == "" || output == "-" {
					_, err = cmd.OutOrStdout().Write(pretty.Bytes())
					return err
				}
				if err := os.WriteFile(output, pretty.Bytes(), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", output, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d boards to %s\n", len(boards), output)
				return nil
			})
		},
	}
	cmd.Flags().StringP("output", "o", "", "file to write (default stdout)")
	return cmd
}

func newImportCmd(open storeOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored boards with the contents of a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			boards, err := repository.DecodeBoards(data)
			if err != nil {
				return fmt.Errorf("refusing to import %s: %w", args[0], err)
			}

			return withStore(cmd, open, func(ctx context.Context, store boardStore) error {
				if !force {
					existing, err := store.LoadStrict(ctx)
					if err == nil && len(existing) > 0 {
						return fmt.Errorf("%s already holds %d boards; pass --force to replace them", store.Backend(), len(existing))
					}
				}
				if err := store.Save(ctx, boards); err != nil {
					return err
				}
				columns, cards := domain.CountCards(boards)
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d boards (%d columns, %d cards) into %s\n",
					len(boards), columns, cards, store.Backend())
				return nil
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "overwrite boards already in storage")
	return cmd
}

func newValidateCmd(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the stored boards decode and satisfy the board invariants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, open, func(ctx context.Context, store boardStore) error {
				boards, err := store.LoadStrict(ctx)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "✗ %s: %v\n", store.Backend(), err)
					return fmt.Errorf("stored boards are invalid")
				}
				columns, cards := domain.CountCards(boards)
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d boards, %d columns, %d cards\n",
					store.Backend(), len(boards), columns, cards)
				return nil
			})
		},
	}
}
