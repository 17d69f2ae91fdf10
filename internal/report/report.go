// Package report renders aggregated pitch counts for the console.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-mlb-pitches/internal/model"
)

// preferredCategories lead the per-pitcher breakdown when present; every
// other category follows in ascending name order.
var preferredCategories = []string{"heater", "breaking ball", "offspeed"}

// Pitchers returns the table's pitcher names in ascending order.
func Pitchers(table model.PitchTable) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Categories returns one pitcher's categories: the preferred ones first,
// in their fixed order, then the remainder ascending.
func Categories(table model.PitchTable, pitcher string) []string {
	byCategory := table[pitcher]
	out := make([]string, 0, len(byCategory))
	seen := make(map[string]bool, len(preferredCategories))
	for _, c := range preferredCategories {
		if _, ok := byCategory[c]; ok {
			out = append(out, c)
			seen[c] = true
		}
	}
	var rest []string
	for c := range byCategory {
		if !seen[c] {
			rest = append(rest, c)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// PitchesByCount returns a category's pitch names ordered by descending
// count, ties broken by ascending name for deterministic output.
func PitchesByCount(byName map[string]int) []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if byName[names[i]] != byName[names[j]] {
			return byName[names[i]] > byName[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// RenderBreakdown produces the ordered breakdown lines: each pitcher with
// a total, each category with a subtotal, each pitch name with its count.
func RenderBreakdown(table model.PitchTable) []string {
	var lines []string
	for _, pitcher := range Pitchers(table) {
		lines = append(lines, fmt.Sprintf("%s  (%d)", pitcher, table.PitcherTotal(pitcher)))
		for _, category := range Categories(table, pitcher) {
			byName := table[pitcher][category]
			lines = append(lines, fmt.Sprintf("  %s  (%d)", category, table.CategoryTotal(pitcher, category)))
			for _, name := range PitchesByCount(byName) {
				lines = append(lines, fmt.Sprintf("    %-16s %3d", name, byName[name]))
			}
		}
		lines = append(lines, "")
	}
	return lines
}

// PrintBreakdown writes the breakdown report to w.
func PrintBreakdown(w io.Writer, table model.PitchTable) {
	for _, line := range RenderBreakdown(table) {
		fmt.Fprintln(w, line)
	}
}

// PrintGameHeader prints a one-line summary header for the game.
func PrintGameHeader(w io.Writer, s model.GameSummary) {
	fmt.Fprintf(w, "\nGame %d  |  %s  |  %s @ %s  |  %s  |  %d pitches\n\n",
		s.GamePk, s.OfficialDate, s.AwayTeam, s.HomeTeam, s.Venue, s.TotalPitches)
}

// PrintPitcherTable prints a per-pitcher overview table: total pitches and
// the most-thrown pitch. Rows follow the breakdown's pitcher order.
func PrintPitcherTable(w io.Writer, table model.PitchTable, teams map[string]string) {
	t := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	t.Header("PITCHER", "TEAM", "PITCHES", "TYPES", "TOP PITCH")

	for _, pitcher := range Pitchers(table) {
		topName, topCount, types := topPitch(table[pitcher])
		top := "—"
		if topName != "" {
			top = fmt.Sprintf("%s (%d)", topName, topCount)
		}
		team := teams[pitcher]
		if team == "" {
			team = "—"
		}
		t.Append(
			pitcher,
			team,
			strconv.Itoa(table.PitcherTotal(pitcher)),
			strconv.Itoa(types),
			top,
		)
	}
	t.Render()
}

// PrintGamesTable prints stored game summaries, newest first.
func PrintGamesTable(w io.Writer, games []model.GameSummary) {
	t := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	t.Header("GAME", "DATE", "AWAY", "HOME", "PITCHERS", "PITCHES")
	for _, g := range games {
		t.Append(
			strconv.Itoa(g.GamePk),
			g.OfficialDate,
			g.AwayTeam,
			g.HomeTeam,
			strconv.Itoa(g.Pitchers),
			strconv.Itoa(g.TotalPitches),
		)
	}
	t.Render()
}

// topPitch returns the most-thrown pitch name, its count, and the number of
// distinct pitch names across all of a pitcher's categories.
func topPitch(byCategory map[string]map[string]int) (string, int, int) {
	name, count, types := "", 0, 0
	var cats []string
	for c := range byCategory {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	for _, c := range cats {
		for _, n := range PitchesByCount(byCategory[c]) {
			types++
			if byCategory[c][n] > count {
				name, count = n, byCategory[c][n]
			}
		}
	}
	return name, count, types
}
