// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package league is the single source of truth for the paddle league season.

# State

A League holds three structures:

  - teams: the five doubles pairings and their points
  - results: match index -> winning team id (write-once)
  - ratings: player name -> every score ever submitted (append-only)

The schedule is static and built in (see DefaultSchedule).

# Lifecycle

	l, err := league.New(ctx, store)

New reads the "teams", "results" and "ratings" snapshots from the store.
A missing or malformed snapshot falls back to its default (seed roster,
no results, no ratings).

# Mutations

	recorded, err := l.RecordResult(ctx, 0, 1) // team 1 wins match 0
	err = l.RecordRating(ctx, "Rob", 5)

Every accepted mutation writes all three snapshots in one batch. If the
write fails the in-memory state is left untouched.

Recording a result for a match that already has one is a no-op and
returns false.

# Views

  - Table: teams by points (descending), ties by ascending id
  - Matches: schedule rows with teams and winner
  - Players: roster players in team order
  - AverageRating / PlayerRating: recomputed from the raw scores on read
*/
package league
