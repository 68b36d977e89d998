package models

import "github.com/gafferdan11/paddleleague/league"

// Request types

type RecordResultRequest struct {
	WinnerID int `json:"winner_id"`
}

type RecordRatingRequest struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
}

// Response types

// recorded is false when the match already had a result
type RecordResultResponse struct {
	Recorded bool         `json:"recorded"`
	Match    league.Match `json:"match"`
}

type LeagueResponse struct {
	Table    []league.Standing     `json:"table"`
	Matches  []league.Match        `json:"matches"`
	Ratings  []league.PlayerRating `json:"ratings"`
	Results  map[int]int           `json:"results"`
	Schedule []league.Fixture      `json:"schedule"`
}

type TableResponse struct {
	Table []league.Standing `json:"table"`
}

type MatchesResponse struct {
	Matches []league.Match `json:"matches"`
}

// player -> every score, in submission order
type RatingsResponse struct {
	Ratings  map[string][]int   `json:"ratings"`
	Averages map[string]float64 `json:"averages"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
