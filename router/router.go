// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/gafferdan11/paddleleague/handlers"
	"github.com/gafferdan11/paddleleague/league"
	"github.com/gafferdan11/paddleleague/middleware"
)

func NewRouter(l *league.League) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(l)
	leagueHandler := handlers.NewLeagueHandler(l)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Scoreboard page and its form posts
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Index))
	mux.HandleFunc("POST /matches/{index}/winner", middleware.WithLogging(pageHandler.SubmitWinner))
	mux.HandleFunc("POST /ratings", middleware.WithLogging(pageHandler.SubmitRating))

	// JSON views
	mux.HandleFunc("GET /api/league", middleware.WithLogging(leagueHandler.GetLeague))
	mux.HandleFunc("GET /api/table", middleware.WithLogging(leagueHandler.GetTable))
	mux.HandleFunc("GET /api/matches", middleware.WithLogging(leagueHandler.GetMatches))
	mux.HandleFunc("GET /api/ratings", middleware.WithLogging(leagueHandler.GetRatings))
	mux.HandleFunc("GET /api/players/{player}/rating", middleware.WithLogging(leagueHandler.GetPlayerRating))

	// JSON mutations
	mux.HandleFunc("POST /api/matches/{index}/result", middleware.WithLogging(leagueHandler.RecordResult))
	mux.HandleFunc("POST /api/ratings", middleware.WithLogging(leagueHandler.RecordRating))

	return mux
}
