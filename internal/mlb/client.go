// Package mlb provides a minimal client for the MLB Stats API: schedule
// lookup by date and the live play-by-play feed for a single game.
package mlb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pable/go-mlb-pitches/internal/model"
)

// defaultBaseURL is the public Stats API root. MLB_API_URL overrides it,
// mainly for pointing tests and mirrors at another host.
const defaultBaseURL = "https://statsapi.mlb.com"

const userAgent = "mlbpitches/0.1"

// Client is a minimal MLB Stats API client.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Stats API client with a default timeout. The base URL
// comes from MLB_API_URL when set.
func NewClient() *Client {
	base := os.Getenv("MLB_API_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// scheduleResponse holds the fields we need from /api/v1/schedule.
type scheduleResponse struct {
	Dates []struct {
		Date  string `json:"date"`
		Games []struct {
			GamePk int `json:"gamePk"`
			Teams  struct {
				Away struct {
					Team model.TeamInfo `json:"team"`
				} `json:"away"`
				Home struct {
					Team model.TeamInfo `json:"team"`
				} `json:"home"`
			} `json:"teams"`
		} `json:"games"`
	} `json:"dates"`
}

// get performs a GET request against the Stats API and JSON-decodes the
// response body into out.
func (c *Client) get(path string, out interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// FindGamePk resolves a gamePk from the schedule for the given date
// (YYYY-MM-DD). homeFilter and awayFilter are case-insensitive substring
// matches on the team names; empty filters match any game. The first game
// satisfying both filters wins.
func (c *Client) FindGamePk(date, homeFilter, awayFilter string) (int, error) {
	params := url.Values{
		"sportId": {"1"},
		"date":    {date},
	}
	var sched scheduleResponse
	if err := c.get("/api/v1/schedule?"+params.Encode(), &sched); err != nil {
		return 0, err
	}

	homeFilter = strings.ToLower(homeFilter)
	awayFilter = strings.ToLower(awayFilter)

	for _, d := range sched.Dates {
		for _, g := range d.Games {
			home := strings.ToLower(g.Teams.Home.Team.Name)
			away := strings.ToLower(g.Teams.Away.Team.Name)
			if homeFilter != "" && !strings.Contains(home, homeFilter) {
				continue
			}
			if awayFilter != "" && !strings.Contains(away, awayFilter) {
				continue
			}
			if g.GamePk != 0 {
				return g.GamePk, nil
			}
		}
	}
	return 0, fmt.Errorf("no matching game found for date %s (home=%q away=%q)", date, homeFilter, awayFilter)
}

// FetchFeed returns the live play-by-play feed for a single game.
func (c *Client) FetchFeed(gamePk int) (*model.GameFeed, error) {
	var feed model.GameFeed
	path := fmt.Sprintf("/api/v1.1/game/%d/feed/live", gamePk)
	if err := c.get(path, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}
