package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestAllPlays_MissingStructure(t *testing.T) {
	cases := []struct {
		name string
		feed *GameFeed
	}{
		{"nil liveData", &GameFeed{}},
		{"nil plays", &GameFeed{LiveData: &LiveData{}}},
		{"nil allPlays", &GameFeed{LiveData: &LiveData{Plays: &Plays{}}}},
	}
	for _, c := range cases {
		if _, err := c.feed.AllPlays(); !errors.Is(err, ErrNoPlays) {
			t.Errorf("%s: want ErrNoPlays, got %v", c.name, err)
		}
	}
}

func TestAllPlays_EmptyIsValid(t *testing.T) {
	feed := &GameFeed{LiveData: &LiveData{Plays: &Plays{AllPlays: []Play{}}}}
	plays, err := feed.AllPlays()
	if err != nil {
		t.Fatalf("empty play list should be valid: %v", err)
	}
	if len(plays) != 0 {
		t.Errorf("want 0 plays, got %d", len(plays))
	}
}

// TestDecode_OptionalFields: absent sub-documents decode to nil pointers so
// presence stays testable downstream.
func TestDecode_OptionalFields(t *testing.T) {
	raw := `{
		"gamePk": 813026,
		"liveData": {"plays": {"allPlays": [
			{"matchup": {"pitcher": {"id": 7, "fullName": "Jane Doe"}},
			 "playEvents": [
				{"isPitch": true, "details": {"type": {"code": "FF", "description": "Four-Seam Fastball"}}},
				{"details": {"description": "Mound Visit"}}
			 ]}
		]}}}`

	var feed GameFeed
	if err := json.Unmarshal([]byte(raw), &feed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	plays, err := feed.AllPlays()
	if err != nil {
		t.Fatalf("AllPlays: %v", err)
	}
	if len(plays) != 1 {
		t.Fatalf("want 1 play, got %d", len(plays))
	}

	first := plays[0].PlayEvents[0]
	if first.IsPitch == nil || !*first.IsPitch {
		t.Error("first event: want isPitch=true")
	}
	if first.PitchData != nil {
		t.Error("first event: pitchData absent in JSON, want nil")
	}

	second := plays[0].PlayEvents[1]
	if second.IsPitch != nil {
		t.Error("second event: isPitch absent in JSON, want nil")
	}
	if second.Details == nil || second.Details.Type != nil {
		t.Error("second event: want details present with nil type")
	}
}

func TestPitchTable_Totals(t *testing.T) {
	table := make(PitchTable)
	table.Inc("P1", "heater", "fastball")
	table.Inc("P1", "heater", "fastball")
	table.Inc("P1", "offspeed", "changeup")
	table.Inc("P2", "breaking ball", "slider")

	if got := table.CategoryTotal("P1", "heater"); got != 2 {
		t.Errorf("CategoryTotal: want 2, got %d", got)
	}
	if got := table.PitcherTotal("P1"); got != 3 {
		t.Errorf("PitcherTotal: want 3, got %d", got)
	}
	if got := table.Total(); got != 4 {
		t.Errorf("Total: want 4, got %d", got)
	}
}
