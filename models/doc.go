// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the JSON API.

# Request Types

Types for parsing incoming JSON:

  - RecordResultRequest: winner_id
  - RecordRatingRequest: player, score

# Response Types

Types for JSON responses:

  - LeagueResponse: table, matches, ratings, results, schedule
  - TableResponse: table
  - MatchesResponse: matches
  - RatingsResponse: ratings, averages
  - RecordResultResponse: recorded, match
  - ErrorResponse: error, message

Domain types (Team, Standing, Match, PlayerRating) live in package league
and are embedded in the responses as-is.
*/
package models
