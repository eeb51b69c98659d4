package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	registerPlayerRoutes(mux, handler, verifier)
	registerMatchRoutes(mux, handler, verifier)
	registerPlanRoutes(mux, handler, verifier)
	registerExportRoutes(mux, handler, verifier)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("GET /v1/players", RequireSession(verifier, http.HandlerFunc(handler.ListPlayers)))
	mux.Handle("POST /v1/players", RequireSession(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("GET /v1/players/{playerID}", RequireSession(verifier, http.HandlerFunc(handler.GetPlayer)))
	mux.Handle("PATCH /v1/players/{playerID}", RequireSession(verifier, http.HandlerFunc(handler.UpdatePlayerPosition)))
	mux.Handle("DELETE /v1/players/{playerID}", RequireSession(verifier, http.HandlerFunc(handler.DeletePlayer)))
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("GET /v1/matches", RequireSession(verifier, http.HandlerFunc(handler.ListMatches)))
	mux.Handle("POST /v1/matches", RequireSession(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("GET /v1/matches/{matchID}", RequireSession(verifier, http.HandlerFunc(handler.GetMatch)))
	mux.Handle("PUT /v1/matches/{matchID}", RequireSession(verifier, http.HandlerFunc(handler.UpdateMatch)))
	mux.Handle("DELETE /v1/matches/{matchID}", RequireSession(verifier, http.HandlerFunc(handler.DeleteMatch)))
	mux.Handle("GET /v1/matches/{matchID}/roster", RequireSession(verifier, http.HandlerFunc(handler.GetRoster)))
	mux.Handle("PUT /v1/matches/{matchID}/roster/{playerID}", RequireSession(verifier, http.HandlerFunc(handler.SetRosterIncluded)))
}

func registerPlanRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("GET /v1/matches/{matchID}/plan", RequireSession(verifier, http.HandlerFunc(handler.GetPlanGrid)))
	mux.Handle("PUT /v1/matches/{matchID}/plan/periods/{period}/players/{playerID}", RequireSession(verifier, http.HandlerFunc(handler.SetPlanOnField)))
	mux.Handle("GET /v1/matches/{matchID}/plan/periods/{period}", RequireSession(verifier, http.HandlerFunc(handler.ValidatePlanPeriod)))
	mux.Handle("POST /v1/matches/{matchID}/plan/periods/{period}/carry-forward", RequireSession(verifier, http.HandlerFunc(handler.CarryForwardPlan)))
	mux.Handle("GET /v1/matches/{matchID}/playtime", RequireSession(verifier, http.HandlerFunc(handler.GetPlaytimeSummary)))
	mux.Handle("POST /v1/matches/{matchID}/plans", RequireSession(verifier, http.HandlerFunc(handler.SavePlan)))
	mux.Handle("GET /v1/matches/{matchID}/plans", RequireSession(verifier, http.HandlerFunc(handler.ListPlans)))
	mux.Handle("POST /v1/matches/{matchID}/plans/{planID}/apply", RequireSession(verifier, http.HandlerFunc(handler.ApplyPlan)))
}

func registerExportRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	mux.Handle("GET /v1/matches/{matchID}/export/csv", RequireSession(verifier, http.HandlerFunc(handler.ExportMatchCSV)))
	mux.Handle("POST /v1/export/xlsx", RequireSession(verifier, http.HandlerFunc(handler.ExportWorkbook)))
}
