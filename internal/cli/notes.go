package cli

import (
	"encoding/json"
	"fmt"
	"voice-notes/internal/domain/entities"
	"voice-notes/internal/infra/repository"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Print the most recent notes of a user",
		RunE:  runNotes,
	}

	cmd.Flags().StringP("user", "u", "", "User identifier (required)")
	cmd.Flags().IntP("limit", "l", 5, "Max notes")
	cmd.Flags().Bool("all", false, "Print every note, ignoring --limit")
	cmd.MarkFlagRequired("user")

	RootCmd.AddCommand(cmd)
}

func runNotes(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetString("user")
	limit, _ := cmd.Flags().GetInt("limit")
	all, _ := cmd.Flags().GetBool("all")

	repo := repository.NewSQLiteNoteRepository(cfg.DBPath)

	var (
		notes []entities.Note
		err   error
	)
	if all {
		notes, err = repo.GetAllNotes(cmd.Context(), userID)
	} else {
		notes, err = repo.GetNotes(cmd.Context(), userID, limit)
	}
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	b, _ := json.MarshalIndent(notes, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
