package httpapi

import "net/http"

func (h *Handler) ListTeamMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamMatches")
	defer span.End()

	query := teamMatchesQuery{
		TeamID:      r.PathValue("teamID"),
		Season:      queryValue(r, "season"),
		Competition: queryValue(r, "competition"),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.ListTeamMatches(ctx, query.TeamID, query.Season, query.Competition)
	if err != nil {
		h.fail(ctx, w, "list team matches failed", err, "team_id", query.TeamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamMatchDTOs(matches))
}

func (h *Handler) GetTeamFilters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamFilters")
	defer span.End()

	query := teamQuery{TeamID: r.PathValue("teamID"), Season: queryValue(r, "season")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	filters, err := h.teamService.GetTeamFilters(ctx, query.TeamID, query.Season)
	if err != nil {
		h.fail(ctx, w, "get team filters failed", err, "team_id", query.TeamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamFiltersDTO(filters))
}

func (h *Handler) GetTeamSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSquad")
	defer span.End()

	query := teamQuery{TeamID: r.PathValue("teamID")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	squad, err := h.teamService.GetTeamSquad(ctx, query.TeamID)
	if err != nil {
		h.fail(ctx, w, "get team squad failed", err, "team_id", query.TeamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSquadDTO(squad))
}
