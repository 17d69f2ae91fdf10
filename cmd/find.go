package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-mlb-pitches/internal/mlb"
	"github.com/pable/go-mlb-pitches/internal/storage"
)

var (
	findDate    string
	findHome    string
	findAway    string
	findRefresh bool
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find a game by date and team, then summarize it",
	Long:  "Look up a gamePk from the schedule by date (YYYY-MM-DD) and optional home/away team name filters, then summarize its pitch types.",
	Args:  cobra.NoArgs,
	RunE:  runFind,
}

func init() {
	findCmd.Flags().StringVar(&findDate, "date", "", "game date YYYY-MM-DD (required)")
	findCmd.Flags().StringVar(&findHome, "home", "", "home team name substring filter")
	findCmd.Flags().StringVar(&findAway, "away", "", "away team name substring filter")
	findCmd.Flags().BoolVar(&findRefresh, "refresh", false, "re-fetch even if the game is already stored")
	findCmd.MarkFlagRequired("date")
}

func runFind(cmd *cobra.Command, args []string) error {
	client := mlb.NewClient()
	gamePk, err := client.FindGamePk(findDate, findHome, findAway)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Resolved game %d for %s.\n", gamePk, findDate)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	return summarizeGame(db, gamePk, findRefresh)
}
