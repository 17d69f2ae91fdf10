package storage

import (
	"database/sql"
	"fmt"

	"github.com/pable/go-mlb-pitches/internal/model"
)

// GameExists returns true if a game with the given pk is already stored.
func (db *DB) GameExists(gamePk int) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM games WHERE game_pk = ?", gamePk).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertGame inserts a game summary record. Uses INSERT OR REPLACE for idempotency.
func (db *DB) InsertGame(s model.GameSummary) error {
	_, err := db.conn.Exec(`
		INSERT OR REPLACE INTO games(game_pk, official_date, away_team, home_team, venue, pitchers, total_pitches, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.GamePk, s.OfficialDate, s.AwayTeam, s.HomeTeam, s.Venue,
		s.Pitchers, s.TotalPitches, s.FetchedAt,
	)
	return err
}

// InsertPitchCounts bulk-inserts pitch count rows in a transaction.
func (db *DB) InsertPitchCounts(counts []model.PitchCount) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO pitch_counts(game_pk, pitcher, team, category, pitch, count)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range counts {
		if _, err := stmt.Exec(c.GamePk, c.Pitcher, c.Team, c.Category, c.Pitch, c.Count); err != nil {
			return fmt.Errorf("insert pitch_counts for %s/%s: %w", c.Pitcher, c.Pitch, err)
		}
	}
	return tx.Commit()
}

// DeleteGame removes a game and its pitch counts.
func (db *DB) DeleteGame(gamePk int) error {
	if _, err := db.conn.Exec("DELETE FROM pitch_counts WHERE game_pk = ?", gamePk); err != nil {
		return err
	}
	_, err := db.conn.Exec("DELETE FROM games WHERE game_pk = ?", gamePk)
	return err
}

// ListGames returns all stored game summaries, newest date first.
func (db *DB) ListGames() ([]model.GameSummary, error) {
	rows, err := db.conn.Query(`
		SELECT game_pk, official_date, away_team, home_team, venue, pitchers, total_pitches, fetched_at
		FROM games ORDER BY official_date DESC, game_pk DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.GameSummary
	for rows.Next() {
		var s model.GameSummary
		if err := rows.Scan(&s.GamePk, &s.OfficialDate, &s.AwayTeam, &s.HomeTeam,
			&s.Venue, &s.Pitchers, &s.TotalPitches, &s.FetchedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetGame returns the stored summary for one game, or nil when not stored.
func (db *DB) GetGame(gamePk int) (*model.GameSummary, error) {
	var s model.GameSummary
	err := db.conn.QueryRow(`
		SELECT game_pk, official_date, away_team, home_team, venue, pitchers, total_pitches, fetched_at
		FROM games WHERE game_pk = ?`, gamePk).
		Scan(&s.GamePk, &s.OfficialDate, &s.AwayTeam, &s.HomeTeam,
			&s.Venue, &s.Pitchers, &s.TotalPitches, &s.FetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetPitchCounts rebuilds a game's pitch table and the pitcher → team map
// from the stored rows.
func (db *DB) GetPitchCounts(gamePk int) (model.PitchTable, map[string]string, error) {
	rows, err := db.conn.Query(`
		SELECT pitcher, team, category, pitch, count
		FROM pitch_counts WHERE game_pk = ?`, gamePk)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	table := make(model.PitchTable)
	teams := make(map[string]string)
	for rows.Next() {
		var c model.PitchCount
		if err := rows.Scan(&c.Pitcher, &c.Team, &c.Category, &c.Pitch, &c.Count); err != nil {
			return nil, nil, err
		}
		for i := 0; i < c.Count; i++ {
			table.Inc(c.Pitcher, c.Category, c.Pitch)
		}
		if c.Team != "" {
			teams[c.Pitcher] = c.Team
		}
	}
	return table, teams, rows.Err()
}

// QueryRaw runs an arbitrary query and returns column names and stringified rows.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]sql.NullString, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}
