// Package aggregator walks a game's plays and builds the per-pitcher pitch
// count table used by the report.
package aggregator

import (
	"github.com/pable/go-mlb-pitches/internal/classify"
	"github.com/pable/go-mlb-pitches/internal/model"
)

// unknownLabel is the fallback when an event carries no usable pitch label.
const unknownLabel = "unknown"

// unknownPitcher is the fallback when a play's matchup has no pitcher name.
const unknownPitcher = "Unknown pitcher"

// IsPitchEvent reports whether the event represents an actual delivery.
// An explicit isPitch flag wins; without one, the presence of pitchData
// (presence, not its values) is the signal. Anything else — pickoffs,
// mound visits, game advisories — is excluded.
func IsPitchEvent(ev model.PlayEvent) bool {
	if ev.IsPitch != nil {
		return *ev.IsPitch
	}
	return ev.PitchData != nil
}

// RawLabel extracts the pitch label from an event, trying the nested
// details.type.description first, then the flat details.description,
// before falling back to "unknown". Every step tolerates absence.
func RawLabel(ev model.PlayEvent) string {
	if ev.Details != nil {
		if ev.Details.Type != nil && ev.Details.Type.Description != "" {
			return ev.Details.Type.Description
		}
		if ev.Details.Description != "" {
			return ev.Details.Description
		}
	}
	return unknownLabel
}

// Aggregate builds the pitcher → category → pitch name count table for a
// full play list. Events missing expected structure are skipped one at a
// time; a malformed event never aborts the aggregation.
func Aggregate(plays []model.Play) model.PitchTable {
	table := make(model.PitchTable)
	for _, play := range plays {
		pitcher := play.Matchup.Pitcher.FullName
		if pitcher == "" {
			pitcher = unknownPitcher
		}
		for _, ev := range play.PlayEvents {
			if !IsPitchEvent(ev) {
				continue
			}
			p := classify.Classify(RawLabel(ev))
			table.Inc(pitcher, p.Category, p.Name)
		}
	}
	return table
}

// PitcherTeams maps each pitcher's display name to their team name, where
// the matchup carries one. Pitchers without team data map to "".
func PitcherTeams(plays []model.Play) map[string]string {
	teams := make(map[string]string)
	for _, play := range plays {
		pitcher := play.Matchup.Pitcher.FullName
		if pitcher == "" {
			pitcher = unknownPitcher
		}
		if teams[pitcher] != "" {
			continue
		}
		if team := play.Matchup.Pitcher.Team; team != nil {
			teams[pitcher] = team.Name
		} else {
			teams[pitcher] = ""
		}
	}
	return teams
}
