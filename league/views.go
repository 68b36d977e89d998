// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package league

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Teams returns a copy of the teams in roster order.
func (l *League) Teams() []Team {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneTeams(l.teams)
}

// Schedule returns a copy of the static schedule.
func (l *League) Schedule() []Fixture {
	out := make([]Fixture, len(l.schedule))
	copy(out, l.schedule)
	return out
}

// Results returns a copy of the match index -> winner id mapping.
func (l *League) Results() map[int]int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneResults(l.results)
}

// Ratings returns a copy of every player's rating history.
func (l *League) Ratings() map[string][]int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneRatings(l.ratings)
}

// Table returns the league table, highest points first. Teams level on
// points are ordered by ascending id.
func (l *League) Table() []Standing {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.table()
}

func (l *League) table() []Standing {
	table := make([]Standing, 0, len(l.teams))
	for _, t := range l.teams {
		table = append(table, Standing{Team: t})
	}

	for idx, winner := range l.results {
		if idx < 0 || idx >= len(l.schedule) {
			continue
		}
		f := l.schedule[idx]
		for i := range table {
			if !f.Involves(table[i].ID) {
				continue
			}
			table[i].Played++
			if table[i].ID == winner {
				table[i].Won++
			} else {
				table[i].Lost++
			}
		}
	}

	sort.Slice(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		return table[i].ID < table[j].ID
	})
	for i := range table {
		table[i].Position = i + 1
	}

	return table
}

// Matches returns every schedule row joined with its teams and result.
func (l *League) Matches() []Match {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.matches()
}

func (l *League) matches() []Match {
	byID := make(map[int]Team, len(l.teams))
	for _, t := range l.teams {
		byID[t.ID] = t
	}

	matches := make([]Match, len(l.schedule))
	for i, f := range l.schedule {
		winner, ok := l.results[i]
		matches[i] = Match{
			Index:    i,
			Home:     byID[f.Home],
			Away:     byID[f.Away],
			Resolved: ok,
			WinnerID: winner,
		}
	}
	return matches
}

// Players returns the roster's players in team order.
func (l *League) Players() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.players()
}

func (l *League) players() []string {
	players := make([]string, 0, 2*len(l.teams))
	for _, t := range l.teams {
		players = append(players, t.Players[0], t.Players[1])
	}
	return players
}

// AverageRating returns the mean score of player rounded to two decimals,
// or 0 if the player has never been rated.
func (l *League) AverageRating(player string) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Average(l.ratings[strings.TrimSpace(player)])
}

// PlayerRating returns the rating history and average of player. The name
// is trimmed the same way RecordRating trims it.
func (l *League) PlayerRating(player string) PlayerRating {
	player = strings.TrimSpace(player)

	l.mu.RLock()
	scores := append([]int{}, l.ratings[player]...)
	l.mu.RUnlock()

	return PlayerRating{
		Player:  player,
		Scores:  scores,
		Average: Average(scores),
		Display: FormatAverage(scores),
	}
}

// Snapshot is a consistent view of the whole league taken under one lock.
type Snapshot struct {
	Table    []Standing
	Matches  []Match
	Players  []string
	Results  map[int]int
	Ratings  map[string][]int
	Schedule []Fixture
}

// Snapshot returns every view at once, so the table always agrees with
// the results it was derived from.
func (l *League) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return Snapshot{
		Table:    l.table(),
		Matches:  l.matches(),
		Players:  l.players(),
		Results:  cloneResults(l.results),
		Ratings:  cloneRatings(l.ratings),
		Schedule: l.Schedule(),
	}
}

// Average returns the arithmetic mean of scores rounded to two decimals.
func Average(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return math.Round(float64(sum)/float64(len(scores))*100) / 100
}

// FormatAverage renders the average for display: "0" for an unrated player,
// otherwise exactly two decimals ("4.00").
func FormatAverage(scores []int) string {
	if len(scores) == 0 {
		return "0"
	}
	return strconv.FormatFloat(Average(scores), 'f', 2, 64)
}
