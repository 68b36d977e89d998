// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/gafferdan11/paddleleague/league"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{"ordinal": humanize.Ordinal}).
		ParseFS(templateFS, "templates/index.html"),
)

// matchRow is a schedule row as the page renders it
type matchRow struct {
	league.Match
	WinnerName string
}

type pageData struct {
	Table   []league.Standing
	Matches []matchRow
	Ratings []league.PlayerRating
	Scores  []int
}

// PageHandler serves the scoreboard page and its form posts
type PageHandler struct {
	league *league.League
}

func NewPageHandler(l *league.League) *PageHandler {
	return &PageHandler{league: l}
}

// Index handles GET /
// Winner buttons are only rendered for matches without a result
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	snap := h.league.Snapshot()
	rows := make([]matchRow, len(snap.Matches))
	for i, m := range snap.Matches {
		rows[i] = matchRow{Match: m}
		if winner, ok := m.Winner(); ok {
			rows[i].WinnerName = winner.Name
		}
	}

	scores := make([]int, 0, league.MaxScore-league.MinScore+1)
	for s := league.MinScore; s <= league.MaxScore; s++ {
		scores = append(scores, s)
	}

	data := pageData{
		Table:   snap.Table,
		Matches: rows,
		Ratings: playerRatings(snap.Players, snap.Ratings),
		Scores:  scores,
	}

	// Render to a buffer so a template error doesn't leave a half-written page
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

// SubmitWinner handles POST /matches/:index/winner (form field team_id)
func (h *PageHandler) SubmitWinner(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "match index must be a number", http.StatusBadRequest)
		return
	}

	teamID, err := strconv.Atoi(r.PostFormValue("team_id"))
	if err != nil {
		http.Error(w, "team_id must be a number", http.StatusBadRequest)
		return
	}

	if _, err := h.league.RecordResult(r.Context(), index, teamID); err != nil {
		writePageError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SubmitRating handles POST /ratings (form fields player, score)
func (h *PageHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	score, err := strconv.Atoi(r.PostFormValue("score"))
	if err != nil {
		http.Error(w, "score must be a number", http.StatusBadRequest)
		return
	}

	if err := h.league.RecordRating(r.Context(), r.PostFormValue("player"), score); err != nil {
		writePageError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func writePageError(w http.ResponseWriter, err error) {
	var code int
	switch {
	case errors.Is(err, league.ErrUnknownMatch):
		code = http.StatusNotFound
	case errors.Is(err, league.ErrNotInMatch),
		errors.Is(err, league.ErrInvalidScore),
		errors.Is(err, league.ErrUnknownPlayer):
		code = http.StatusBadRequest
	default:
		slog.Error("failed to save league", "error", err)
		http.Error(w, "Failed to save league", http.StatusInternalServerError)
		return
	}
	http.Error(w, err.Error(), code)
}
