package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/tournaments", handler.CreateTournament)
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/standings", handler.GetStandings)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/matches/{matchID}/import", handler.ImportScorecard)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/imports", handler.ImportBatch)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/leaderboards", handler.GetLeaderboardSummary)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/leaderboards/{category}", handler.GetLeaderboardCategory)
	mux.HandleFunc("POST /v1/stats/preview", handler.PreviewStats)
	mux.HandleFunc("GET /v1/team-dictionary", handler.GetDictionary)
	mux.HandleFunc("PUT /v1/team-dictionary", handler.UpdateDictionary)
}
