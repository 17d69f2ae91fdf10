// Package model holds the MLB Stats API feed types and the aggregated
// pitch-count structures shared across the tool.
package model

import "errors"

// ErrNoPlays is returned when a live feed carries no liveData.plays.allPlays
// structure at all. A feed without it is the wrong shape, not an empty game.
var ErrNoPlays = errors.New("feed has no play-by-play data (liveData.plays.allPlays missing)")

// ---- Live feed document (api/v1.1/game/{pk}/feed/live) ----
//
// Only the fields the tool reads are declared. Optional sub-documents are
// pointers so absence stays observable after decoding.

type GameFeed struct {
	GamePk   int       `json:"gamePk"`
	GameData GameData  `json:"gameData"`
	LiveData *LiveData `json:"liveData"`
}

type GameData struct {
	Datetime GameDatetime `json:"datetime"`
	Teams    FeedTeams    `json:"teams"`
	Venue    Venue        `json:"venue"`
}

type GameDatetime struct {
	OfficialDate string `json:"officialDate"`
}

type FeedTeams struct {
	Away TeamInfo `json:"away"`
	Home TeamInfo `json:"home"`
}

type TeamInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Venue struct {
	Name string `json:"name"`
}

type LiveData struct {
	Plays *Plays `json:"plays"`
}

type Plays struct {
	AllPlays []Play `json:"allPlays"`
}

// Play is one at-bat record: a matchup plus its event sequence.
type Play struct {
	Matchup    Matchup     `json:"matchup"`
	PlayEvents []PlayEvent `json:"playEvents"`
}

type Matchup struct {
	Pitcher Person `json:"pitcher"`
	Batter  Person `json:"batter"`
}

type Person struct {
	ID       int       `json:"id"`
	FullName string    `json:"fullName"`
	Team     *TeamInfo `json:"team"`
}

// PlayEvent is one delivery or non-pitch action within a play. IsPitch and
// PitchData are pointers because many event kinds omit them entirely.
type PlayEvent struct {
	IsPitch   *bool         `json:"isPitch"`
	PitchData *PitchData    `json:"pitchData"`
	Details   *EventDetails `json:"details"`
}

type PitchData struct {
	StartSpeed float64 `json:"startSpeed"`
	EndSpeed   float64 `json:"endSpeed"`
}

type EventDetails struct {
	Type        *PitchType `json:"type"`
	Description string     `json:"description"`
	Call        *CallInfo  `json:"call"`
}

type PitchType struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type CallInfo struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// AllPlays returns the feed's play list, or ErrNoPlays when the
// liveData.plays.allPlays path is absent. An empty (but present) play list
// is a valid feed for a game that has not started.
func (f *GameFeed) AllPlays() ([]Play, error) {
	if f == nil || f.LiveData == nil || f.LiveData.Plays == nil || f.LiveData.Plays.AllPlays == nil {
		return nil, ErrNoPlays
	}
	return f.LiveData.Plays.AllPlays, nil
}

// ---- Aggregated structures ----

// PitchTable maps pitcher name → category → pitch name → count.
// Entries are only created on increment, so every stored count is ≥ 1.
type PitchTable map[string]map[string]map[string]int

// Inc adds one pitch for the given pitcher/category/name, creating
// intermediate maps on first access.
func (t PitchTable) Inc(pitcher, category, name string) {
	byCategory := t[pitcher]
	if byCategory == nil {
		byCategory = make(map[string]map[string]int)
		t[pitcher] = byCategory
	}
	byName := byCategory[category]
	if byName == nil {
		byName = make(map[string]int)
		byCategory[category] = byName
	}
	byName[name]++
}

// PitcherTotal returns the total pitch count for one pitcher.
func (t PitchTable) PitcherTotal(pitcher string) int {
	total := 0
	for _, byName := range t[pitcher] {
		for _, n := range byName {
			total += n
		}
	}
	return total
}

// CategoryTotal returns the pitch count for one pitcher's category.
func (t PitchTable) CategoryTotal(pitcher, category string) int {
	total := 0
	for _, n := range t[pitcher][category] {
		total += n
	}
	return total
}

// Total returns the pitch count across all pitchers.
func (t PitchTable) Total() int {
	total := 0
	for pitcher := range t {
		total += t.PitcherTotal(pitcher)
	}
	return total
}

// PitchCount is one flattened row of a PitchTable, used for storage.
type PitchCount struct {
	GamePk   int
	Pitcher  string
	Team     string
	Category string
	Pitch    string
	Count    int
}

// GameSummary is a lightweight record for list/show commands.
type GameSummary struct {
	GamePk       int
	OfficialDate string
	AwayTeam     string
	HomeTeam     string
	Venue        string
	Pitchers     int
	TotalPitches int
	FetchedAt    string
}
