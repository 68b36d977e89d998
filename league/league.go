// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package league

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

var (
	ErrUnknownMatch  = errors.New("unknown match")
	ErrNotInMatch    = errors.New("team does not play in this match")
	ErrInvalidScore  = errors.New("score must be between 1 and 5")
	ErrUnknownPlayer = errors.New("player name is required")
)

// Persister is a durable key-value store holding the league snapshots.
// PutAll must write every entry or none.
type Persister interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	PutAll(ctx context.Context, entries map[string][]byte) error
}

// League owns the teams, results and ratings of one season.
type League struct {
	mu       sync.RWMutex
	store    Persister
	schedule []Fixture
	teams    []Team
	results  map[int]int
	ratings  map[string][]int
}

// New loads the league from store. Absent or unreadable snapshots fall back
// to the built-in defaults; a failing store is returned as an error.
func New(ctx context.Context, store Persister) (*League, error) {
	schedule := DefaultSchedule()

	teams, err := load(ctx, store, KeyTeams, DefaultTeams(), func(v []Team) bool {
		return validTeams(v, schedule)
	})
	if err != nil {
		return nil, err
	}

	results, err := load(ctx, store, KeyResults, map[int]int{}, func(v map[int]int) bool {
		return v != nil
	})
	if err != nil {
		return nil, err
	}

	ratings, err := load(ctx, store, KeyRatings, map[string][]int{}, func(v map[string][]int) bool {
		return v != nil
	})
	if err != nil {
		return nil, err
	}

	return &League{
		store:    store,
		schedule: schedule,
		teams:    teams,
		results:  results,
		ratings:  ratings,
	}, nil
}

func load[T any](ctx context.Context, store Persister, key string, fallback T, valid func(T) bool) (T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return fallback, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return fallback, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("ignoring malformed snapshot", "key", key, "error", err)
		return fallback, nil
	}
	if !valid(v) {
		slog.Warn("ignoring invalid snapshot", "key", key)
		return fallback, nil
	}

	return v, nil
}

// validTeams reports whether teams has unique ids, no negative points and
// every team the schedule references.
func validTeams(teams []Team, schedule []Fixture) bool {
	seen := make(map[int]bool, len(teams))
	for _, t := range teams {
		if seen[t.ID] || t.Points < 0 {
			return false
		}
		seen[t.ID] = true
	}
	for _, f := range schedule {
		if !seen[f.Home] || !seen[f.Away] {
			return false
		}
	}
	return len(teams) > 0
}

// RecordResult records winnerID as the winner of match matchIndex and awards
// it PointsPerWin. Results are write-once: if the match already has a
// result, RecordResult returns false and changes nothing.
func (l *League) RecordResult(ctx context.Context, matchIndex, winnerID int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if matchIndex < 0 || matchIndex >= len(l.schedule) {
		return false, ErrUnknownMatch
	}
	if _, ok := l.results[matchIndex]; ok {
		return false, nil
	}
	if !l.schedule[matchIndex].Involves(winnerID) {
		return false, ErrNotInMatch
	}

	teams := cloneTeams(l.teams)
	for i := range teams {
		if teams[i].ID == winnerID {
			teams[i].Points += PointsPerWin
		}
	}

	results := cloneResults(l.results)
	results[matchIndex] = winnerID

	if err := l.persist(ctx, teams, results, l.ratings); err != nil {
		return false, err
	}
	l.teams, l.results = teams, results

	slog.Info("result recorded", "match", matchIndex, "winner", winnerID)
	return true, nil
}

// RecordRating appends score to the rating history of player. Surrounding
// whitespace is not part of the name.
func (l *League) RecordRating(ctx context.Context, player string, score int) error {
	player = strings.TrimSpace(player)
	if player == "" {
		return ErrUnknownPlayer
	}
	if score < MinScore || score > MaxScore {
		return ErrInvalidScore
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ratings := cloneRatings(l.ratings)
	ratings[player] = append(ratings[player], score)

	if err := l.persist(ctx, l.teams, l.results, ratings); err != nil {
		return err
	}
	l.ratings = ratings

	slog.Info("rating recorded", "player", player, "score", score)
	return nil
}

// persist writes the complete snapshot. Callers hold the write lock and
// only swap in the new state after persist succeeds.
func (l *League) persist(ctx context.Context, teams []Team, results map[int]int, ratings map[string][]int) error {
	entries := make(map[string][]byte, 3)
	for key, v := range map[string]any{
		KeyTeams:   teams,
		KeyResults: results,
		KeyRatings: ratings,
	} {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		entries[key] = raw
	}

	if err := l.store.PutAll(ctx, entries); err != nil {
		return fmt.Errorf("failed to persist league: %w", err)
	}
	return nil
}

func cloneTeams(teams []Team) []Team {
	out := make([]Team, len(teams))
	copy(out, teams)
	return out
}

func cloneResults(results map[int]int) map[int]int {
	out := make(map[int]int, len(results)+1)
	for k, v := range results {
		out[k] = v
	}
	return out
}

func cloneRatings(ratings map[string][]int) map[string][]int {
	out := make(map[string][]int, len(ratings)+1)
	for k, v := range ratings {
		out[k] = append([]int(nil), v...)
	}
	return out
}
