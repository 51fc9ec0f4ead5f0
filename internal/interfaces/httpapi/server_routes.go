package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/matches", handler.ListMatches)
	mux.HandleFunc("GET /api/team/{teamID}/matches", handler.ListTeamMatches)
	mux.HandleFunc("GET /api/team/{teamID}/filters", handler.GetTeamFilters)
	mux.HandleFunc("GET /api/team/{teamID}/squad", handler.GetTeamSquad)
	mux.HandleFunc("GET /api/player/{playerID}", handler.GetPlayerDetails)
	mux.HandleFunc("GET /api/player/{playerID}/matches", handler.GetPlayerMatches)
	mux.HandleFunc("GET /api/competition/{code}", handler.GetCompetitionDetails)
	mux.HandleFunc("GET /api/search/teams", handler.SearchTeams)
	mux.HandleFunc("GET /api/search/players", handler.SearchPlayers)

	// "/api/{matchID}/statistics" would overlap /api/player/{playerID} without
	// either being more specific, so the section is matched in the handler.
	mux.HandleFunc("GET /api/{matchID}/{section}", handler.GetMatchStatistics)
}
