package storage

import (
	"testing"

	"github.com/pable/go-mlb-pitches/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleGame() model.GameSummary {
	return model.GameSummary{
		GamePk:       813026,
		OfficialDate: "2025-06-14",
		AwayTeam:     "Boston Red Sox",
		HomeTeam:     "New York Yankees",
		Venue:        "Yankee Stadium",
		Pitchers:     2,
		TotalPitches: 6,
		FetchedAt:    "2025-06-15T02:00:00Z",
	}
}

func TestGameInsertAndExists(t *testing.T) {
	db := openMemDB(t)

	if err := db.InsertGame(sampleGame()); err != nil {
		t.Fatalf("InsertGame: %v", err)
	}

	exists, err := db.GameExists(813026)
	if err != nil {
		t.Fatalf("GameExists: %v", err)
	}
	if !exists {
		t.Error("expected game to exist after insert")
	}

	exists2, _ := db.GameExists(999999)
	if exists2 {
		t.Error("expected unknown game to not exist")
	}
}

func TestListGames(t *testing.T) {
	db := openMemDB(t)

	games := []model.GameSummary{
		{GamePk: 1, OfficialDate: "2025-04-01", AwayTeam: "A", HomeTeam: "B", FetchedAt: "x"},
		{GamePk: 2, OfficialDate: "2025-05-01", AwayTeam: "C", HomeTeam: "D", FetchedAt: "x"},
	}
	for _, g := range games {
		if err := db.InsertGame(g); err != nil {
			t.Fatalf("InsertGame: %v", err)
		}
	}

	list, err := db.ListGames()
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 games, got %d", len(list))
	}
	// Ordered by official_date DESC — game 2 should be first.
	if list[0].GamePk != 2 {
		t.Errorf("expected game 2 first (newest), got %d", list[0].GamePk)
	}
}

func TestPitchCountsRoundTrip(t *testing.T) {
	db := openMemDB(t)

	if err := db.InsertGame(sampleGame()); err != nil {
		t.Fatalf("InsertGame: %v", err)
	}

	counts := []model.PitchCount{
		{GamePk: 813026, Pitcher: "Ana Alvarez", Team: "Boston Red Sox", Category: "heater", Pitch: "fastball", Count: 3},
		{GamePk: 813026, Pitcher: "Ana Alvarez", Team: "Boston Red Sox", Category: "breaking ball", Pitch: "slider", Count: 1},
		{GamePk: 813026, Pitcher: "Ben Brower", Team: "New York Yankees", Category: "breaking ball", Pitch: "curveball", Count: 2},
	}
	if err := db.InsertPitchCounts(counts); err != nil {
		t.Fatalf("InsertPitchCounts: %v", err)
	}

	table, teams, err := db.GetPitchCounts(813026)
	if err != nil {
		t.Fatalf("GetPitchCounts: %v", err)
	}
	if got := table["Ana Alvarez"]["heater"]["fastball"]; got != 3 {
		t.Errorf("fastball count: want 3, got %d", got)
	}
	if got := table.PitcherTotal("Ben Brower"); got != 2 {
		t.Errorf("Ben Brower total: want 2, got %d", got)
	}
	if teams["Ana Alvarez"] != "Boston Red Sox" {
		t.Errorf("Ana Alvarez team: got %q", teams["Ana Alvarez"])
	}
}

func TestGetGame(t *testing.T) {
	db := openMemDB(t)

	if err := db.InsertGame(sampleGame()); err != nil {
		t.Fatalf("InsertGame: %v", err)
	}

	g, err := db.GetGame(813026)
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if g == nil {
		t.Fatal("expected stored game")
	}
	if g.HomeTeam != "New York Yankees" || g.TotalPitches != 6 {
		t.Errorf("unexpected summary: %+v", g)
	}

	missing, err := db.GetGame(42)
	if err != nil {
		t.Fatalf("GetGame missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown game")
	}
}

func TestDeleteGame(t *testing.T) {
	db := openMemDB(t)

	db.InsertGame(sampleGame())
	db.InsertPitchCounts([]model.PitchCount{
		{GamePk: 813026, Pitcher: "Ana Alvarez", Category: "heater", Pitch: "fastball", Count: 3},
	})

	if err := db.DeleteGame(813026); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}
	exists, _ := db.GameExists(813026)
	if exists {
		t.Error("game still exists after delete")
	}
	table, _, err := db.GetPitchCounts(813026)
	if err != nil {
		t.Fatalf("GetPitchCounts after delete: %v", err)
	}
	if len(table) != 0 {
		t.Errorf("pitch counts remain after delete: %v", table)
	}
}

func TestInsertIdempotency(t *testing.T) {
	db := openMemDB(t)

	g := sampleGame()
	db.InsertGame(g)
	// Second insert should not error (INSERT OR REPLACE).
	if err := db.InsertGame(g); err != nil {
		t.Errorf("second InsertGame should succeed (idempotent): %v", err)
	}
}
