package httpapi

import "net/http"

func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchTeams")
	defer span.End()

	query := searchQuery{Q: queryValue(r, "q")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.searchService.SearchTeams(ctx, query.Q)
	if err != nil {
		h.fail(ctx, w, "search teams failed", err, "query", query.Q)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamSearchDTO(result))
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	query := searchQuery{Q: queryValue(r, "q"), TeamID: queryValue(r, "team_id")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.searchService.SearchPlayers(ctx, query.Q, query.TeamID)
	if err != nil {
		h.fail(ctx, w, "search players failed", err, "query", query.Q, "team_id", query.TeamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPlayerSearchDTO(result))
}
