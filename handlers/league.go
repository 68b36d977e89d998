// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/gafferdan11/paddleleague/league"
	"github.com/gafferdan11/paddleleague/middleware"
	"github.com/gafferdan11/paddleleague/models"
)

type LeagueHandler struct {
	league *league.League
}

func NewLeagueHandler(l *league.League) *LeagueHandler {
	return &LeagueHandler{league: l}
}

// GetLeague handles GET /api/league
// Returns everything the scoreboard renders in one response
func (h *LeagueHandler) GetLeague(w http.ResponseWriter, r *http.Request) {
	s := h.league.Snapshot()
	middleware.JSONResponse(w, http.StatusOK, models.LeagueResponse{
		Table:    s.Table,
		Matches:  s.Matches,
		Ratings:  playerRatings(s.Players, s.Ratings),
		Results:  s.Results,
		Schedule: s.Schedule,
	})
}

// GetTable handles GET /api/table
func (h *LeagueHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.TableResponse{
		Table: h.league.Table(),
	})
}

// GetMatches handles GET /api/matches
func (h *LeagueHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.MatchesResponse{
		Matches: h.league.Matches(),
	})
}

// GetRatings handles GET /api/ratings
func (h *LeagueHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	ratings := h.league.Ratings()
	averages := make(map[string]float64, len(ratings))
	for player, scores := range ratings {
		averages[player] = league.Average(scores)
	}

	middleware.JSONResponse(w, http.StatusOK, models.RatingsResponse{
		Ratings:  ratings,
		Averages: averages,
	})
}

// GetPlayerRating handles GET /api/players/:player/rating
// Unrated players get an empty history and an average of 0. The name is
// matched after trimming, as ratings are stored
func (h *LeagueHandler) GetPlayerRating(w http.ResponseWriter, r *http.Request) {
	player := r.PathValue("player")
	if player == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "player is required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.league.PlayerRating(player))
}

// RecordResult handles POST /api/matches/:index/result
// 201 when the result is recorded, 200 with recorded=false when the match
// already had one
func (h *LeagueHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "match index must be a number")
		return
	}

	var req models.RecordResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	recorded, err := h.league.RecordResult(r.Context(), index, req.WinnerID)
	if err != nil {
		writeLeagueError(w, err)
		return
	}

	status := http.StatusOK
	if recorded {
		status = http.StatusCreated
	}

	middleware.JSONResponse(w, status, models.RecordResultResponse{
		Recorded: recorded,
		Match:    h.league.Matches()[index],
	})
}

// RecordRating handles POST /api/ratings
func (h *LeagueHandler) RecordRating(w http.ResponseWriter, r *http.Request) {
	var req models.RecordRatingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.league.RecordRating(r.Context(), req.Player, req.Score); err != nil {
		writeLeagueError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, h.league.PlayerRating(req.Player))
}

// writeLeagueError maps league errors to HTTP responses
func writeLeagueError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, league.ErrUnknownMatch):
		middleware.ErrorResponse(w, http.StatusNotFound, "Match not found")
	case errors.Is(err, league.ErrNotInMatch),
		errors.Is(err, league.ErrInvalidScore),
		errors.Is(err, league.ErrUnknownPlayer):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("failed to save league", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save league")
	}
}

// playerRatings lists roster players first, in team order, followed by any
// other rated players alphabetically
func playerRatings(roster []string, ratings map[string][]int) []league.PlayerRating {
	onRoster := make(map[string]bool, len(roster))
	for _, p := range roster {
		onRoster[p] = true
	}

	var extra []string
	for p := range ratings {
		if !onRoster[p] {
			extra = append(extra, p)
		}
	}
	sort.Strings(extra)

	out := make([]league.PlayerRating, 0, len(roster)+len(extra))
	for _, p := range append(roster, extra...) {
		scores := ratings[p]
		out = append(out, league.PlayerRating{
			Player:  p,
			Scores:  append([]int{}, scores...),
			Average: league.Average(scores),
			Display: league.FormatAverage(scores),
		})
	}
	return out
}
