// Package classify maps raw pitch labels from the MLB feed to canonical
// pitch names and display categories.
package classify

import "strings"

// Pitch is the canonical classification of one raw pitch label.
type Pitch struct {
	Name     string
	Category string
}

// codeTable maps the short Stats API pitch codes to canonical names.
// For this tier the category collapses onto the name; the coarser display
// categories only exist for the keyword tier below.
var codeTable = []struct {
	code string
	name string
}{
	{"FF", "fastball"},
	{"FA", "fastball"},
	{"FT", "fastball"},
	{"FF/FT", "fastball"},
	{"SI", "sinker"},
	{"SL", "slider"},
	{"CU", "curveball"},
	{"KC", "curveball"},
	{"CH", "changeup"},
	{"FC", "cutter"},
	{"FS", "splitter"},
	{"IN", "intentional"},
}

// keywordRules is evaluated top to bottom against the lowercased label;
// the first substring hit wins. "knuckle curve" sits above "curve" so the
// more specific label is not swallowed by the generic one.
var keywordRules = []struct {
	substr string
	pitch  Pitch
}{
	{"fast", Pitch{"fastball", "heater"}},
	{"slider", Pitch{"slider", "breaking ball"}},
	{"knuckle curve", Pitch{"knuckle curve", "breaking ball"}},
	{"curve", Pitch{"curveball", "breaking ball"}},
	{"change", Pitch{"changeup", "offspeed"}},
	{"sinker", Pitch{"sinker", "heater"}},
	{"cutter", Pitch{"cutter", "heater"}},
	{"splitter", Pitch{"splitter", "offspeed"}},
	{"sweeper", Pitch{"sweeper", "breaking ball"}},
	{"knuckleball", Pitch{"knuckleball", "other"}},
}

// Classify resolves a raw pitch label to a canonical (name, category) pair.
// It is total: empty input yields ("unknown", "unknown") and an unmatched
// label passes through trimmed, as both name and category, so descriptive
// upstream labels stay visible in the report.
func Classify(raw string) Pitch {
	label := strings.TrimSpace(raw)
	if label == "" {
		return Pitch{Name: "unknown", Category: "unknown"}
	}

	upper := strings.ToUpper(label)
	for _, m := range codeTable {
		if upper == m.code {
			return Pitch{Name: m.name, Category: m.name}
		}
	}

	lower := strings.ToLower(label)
	for _, r := range keywordRules {
		if strings.Contains(lower, r.substr) {
			return r.pitch
		}
	}

	return Pitch{Name: label, Category: label}
}
