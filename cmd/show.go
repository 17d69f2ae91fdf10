package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pable/go-mlb-pitches/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <gamePk>",
	Short: "Show a stored game's pitch breakdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	gamePk, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid gamePk %q: %w", args[0], err)
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	return showStored(db, gamePk)
}
