package cli

import (
	"fmt"
	"voice-notes/internal/infra/repository"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "init-db",
		Short: "Create the notes table if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := repository.NewSQLiteNoteRepository(cfg.DBPath).Init(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database initialized: %s\n", cfg.DBPath)
			return nil
		},
	})
}
