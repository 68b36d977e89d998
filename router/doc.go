// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the paddle league server.

# Route Registration

NewRouter creates a configured http.ServeMux bound to one league:

	mux := router.NewRouter(l)

# Endpoints

Health:

	GET /health

Scoreboard page (HTML, form posts redirect back to /):

	GET  /                        - League table, matches and ratings
	POST /matches/{index}/winner  - Record a winner (form: team_id)
	POST /ratings                 - Rate a player (form: player, score)

JSON API:

	GET  /api/league                  - Everything the page shows
	GET  /api/table                   - League table
	GET  /api/matches                 - Match list with results
	GET  /api/ratings                 - Raw rating histories and averages
	GET  /api/players/{player}/rating - One player's rating
	POST /api/matches/{index}/result  - Record a winner
	POST /api/ratings                 - Rate a player

Every route except /health is wrapped with middleware.WithLogging.
*/
package router
