// Package cli implements the voice-notes commands.
package cli

import (
	"fmt"
	"voice-notes/internal/config"

	"github.com/spf13/cobra"
)

var (
	envFile string
	dbPath  string

	cfg *config.Config
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "voice-notes",
	Short: "Voice dictation skill backend",
	Long:  "Receives voice-assistant requests, records dictated notes in SQLite and mails them to the user.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnv(envFile); err != nil {
			return err
		}
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dbPath != "" {
			loaded.DBPath = dbPath
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), cfg)
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load when present")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $DB_PATH or database.db)")
}
