// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the paddle league.

# Handler Types

Both handlers wrap one *league.League:

  - PageHandler: Server-rendered scoreboard and its form posts
  - LeagueHandler: JSON views and mutations

	pageHandler := handlers.NewPageHandler(l)
	leagueHandler := handlers.NewLeagueHandler(l)

# Scoreboard Page

GET / renders the league table, the match list and the player ratings from
templates/index.html. A match shows two winner buttons until it has a
result, then the winner's name. Form posts redirect back to / with 303.

# Errors

League errors map to status codes the same way on both surfaces:

	ErrUnknownMatch                                  → 404
	ErrNotInMatch, ErrInvalidScore, ErrUnknownPlayer → 400
	store failure                                    → 500

Submitting a result for a match that already has one is not an error: the
JSON API answers 200 with recorded=false and the page simply redirects.
*/
package handlers
