// Package main is the entry point for the mlbpitches CLI tool, which fetches
// MLB play-by-play feeds and summarizes pitch types per pitcher.
package main

import "github.com/pable/go-mlb-pitches/cmd"

func main() {
	cmd.Execute()
}
