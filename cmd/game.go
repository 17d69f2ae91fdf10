package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-mlb-pitches/internal/aggregator"
	"github.com/pable/go-mlb-pitches/internal/mlb"
	"github.com/pable/go-mlb-pitches/internal/model"
	"github.com/pable/go-mlb-pitches/internal/report"
	"github.com/pable/go-mlb-pitches/internal/storage"
)

var gameRefresh bool

var gameCmd = &cobra.Command{
	Use:   "game <gamePk>",
	Short: "Summarize pitch types for a single game",
	Long:  "Fetch the live feed for the given gamePk, summarize pitch types per pitcher, and store the result.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGame,
}

func init() {
	gameCmd.Flags().BoolVar(&gameRefresh, "refresh", false, "re-fetch even if the game is already stored")
}

func runGame(cmd *cobra.Command, args []string) error {
	gamePk, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid gamePk %q: %w", args[0], err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	return summarizeGame(db, gamePk, gameRefresh)
}

// summarizeGame runs the fetch → aggregate → store → render pipeline for
// one game, rendering from the cache when the game is already stored.
func summarizeGame(db *storage.DB, gamePk int, refresh bool) error {
	if !refresh {
		exists, err := db.GameExists(gamePk)
		if err != nil {
			return fmt.Errorf("check game: %w", err)
		}
		if exists {
			fmt.Fprintf(os.Stdout, "Game %d already stored — showing cached results.\n", gamePk)
			return showStored(db, gamePk)
		}
	}

	client := mlb.NewClient()
	fmt.Fprintf(os.Stdout, "Fetching feed for game %d...\n", gamePk)
	feed, err := client.FetchFeed(gamePk)
	if err != nil {
		return fmt.Errorf("fetch feed: %w", err)
	}

	plays, err := feed.AllPlays()
	if err != nil {
		return err
	}

	table := aggregator.Aggregate(plays)
	teams := aggregator.PitcherTeams(plays)

	summary := model.GameSummary{
		GamePk:       gamePk,
		OfficialDate: feed.GameData.Datetime.OfficialDate,
		AwayTeam:     feed.GameData.Teams.Away.Name,
		HomeTeam:     feed.GameData.Teams.Home.Name,
		Venue:        feed.GameData.Venue.Name,
		Pitchers:     len(table),
		TotalPitches: table.Total(),
		FetchedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if refresh {
		if err := db.DeleteGame(gamePk); err != nil {
			return fmt.Errorf("clear stored game: %w", err)
		}
	}
	if err := db.InsertGame(summary); err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	if err := db.InsertPitchCounts(flattenCounts(gamePk, table, teams)); err != nil {
		return fmt.Errorf("insert pitch counts: %w", err)
	}

	report.PrintGameHeader(os.Stdout, summary)
	report.PrintPitcherTable(os.Stdout, table, teams)
	fmt.Fprintln(os.Stdout)
	report.PrintBreakdown(os.Stdout, table)
	return nil
}

// flattenCounts turns the nested pitch table into storable rows.
func flattenCounts(gamePk int, table model.PitchTable, teams map[string]string) []model.PitchCount {
	var counts []model.PitchCount
	for pitcher, byCategory := range table {
		for category, byName := range byCategory {
			for name, count := range byName {
				counts = append(counts, model.PitchCount{
					GamePk:   gamePk,
					Pitcher:  pitcher,
					Team:     teams[pitcher],
					Category: category,
					Pitch:    name,
					Count:    count,
				})
			}
		}
	}
	return counts
}

func showStored(db *storage.DB, gamePk int) error {
	summary, err := db.GetGame(gamePk)
	if err != nil || summary == nil {
		return fmt.Errorf("game not found: %d", gamePk)
	}
	table, teams, err := db.GetPitchCounts(gamePk)
	if err != nil {
		return fmt.Errorf("get pitch counts: %w", err)
	}
	report.PrintGameHeader(os.Stdout, *summary)
	report.PrintPitcherTable(os.Stdout, table, teams)
	fmt.Fprintln(os.Stdout)
	report.PrintBreakdown(os.Stdout, table)
	return nil
}
