// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package league

// PointsPerWin is awarded to the winning team of a match.
const PointsPerWin = 3

// Rating bounds (inclusive)
const (
	MinScore = 1
	MaxScore = 5
)

// Persisted snapshot keys
const (
	KeyTeams   = "teams"
	KeyResults = "results"
	KeyRatings = "ratings"
)

// DefaultTeams returns the season's seed roster with zero points.
// Ids and order are part of the persisted contract.
func DefaultTeams() []Team {
	return []Team{
		{ID: 1, Name: "Rob & Bean", Players: [2]string{"Rob", "Bean"}},
		{ID: 2, Name: "Dan & TJ", Players: [2]string{"Dan", "TJ"}},
		{ID: 3, Name: "Weedy & Pear", Players: [2]string{"Weedy", "Pear"}},
		{ID: 4, Name: "Nova & Bulby", Players: [2]string{"Nova", "Bulby"}},
		{ID: 5, Name: "Neil & JHD", Players: [2]string{"Neil", "JHD"}},
	}
}

// DefaultSchedule returns the fixed round-robin schedule. A match is
// identified by its index in this slice.
func DefaultSchedule() []Fixture {
	return []Fixture{
		{Home: 1, Away: 2},
		{Home: 3, Away: 4},
		{Home: 5, Away: 1},
		{Home: 2, Away: 3},
		{Home: 4, Away: 5},
		{Home: 1, Away: 3},
		{Home: 2, Away: 4},
		{Home: 5, Away: 3},
		{Home: 1, Away: 4},
		{Home: 2, Away: 5},
	}
}
