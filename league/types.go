// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package league

// Team is a doubles pairing. Points only ever grow, by PointsPerWin per win.
type Team struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Players [2]string `json:"players"`
	Points  int       `json:"points"`
}

// Fixture is one entry of the static schedule.
type Fixture struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Involves reports whether teamID plays in the fixture.
func (f Fixture) Involves(teamID int) bool {
	return teamID == f.Home || teamID == f.Away
}

// Standing is a row of the league table. Played, Won and Lost are derived
// from the results on every read.
type Standing struct {
	Position int `json:"position"`
	Team
	Played int `json:"played"`
	Won    int `json:"won"`
	Lost   int `json:"lost"`
}

// Match is a schedule row joined with its teams and result.
type Match struct {
	Index    int  `json:"index"`
	Home     Team `json:"home"`
	Away     Team `json:"away"`
	Resolved bool `json:"resolved"`
	WinnerID int  `json:"winner_id,omitempty"`
}

// Winner returns the winning team of a resolved match.
func (m Match) Winner() (Team, bool) {
	switch {
	case !m.Resolved:
		return Team{}, false
	case m.WinnerID == m.Home.ID:
		return m.Home, true
	case m.WinnerID == m.Away.ID:
		return m.Away, true
	}
	return Team{}, false
}

// PlayerRating is the rating history of one player plus its derived average.
type PlayerRating struct {
	Player  string  `json:"player"`
	Scores  []int   `json:"scores"`
	Average float64 `json:"average"`
	Display string  `json:"display"`
}
