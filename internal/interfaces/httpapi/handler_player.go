package httpapi

import "net/http"

func (h *Handler) GetPlayerDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDetails")
	defer span.End()

	query := playerQuery{PlayerID: r.PathValue("playerID")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	player, err := h.playerService.GetPlayerDetails(ctx, query.PlayerID)
	if err != nil {
		h.fail(ctx, w, "get player details failed", err, "player_id", query.PlayerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPlayerDTO(player))
}

func (h *Handler) GetPlayerMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerMatches")
	defer span.End()

	limit, err := parseOptionalInt("limit", queryValue(r, "limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := playerMatchesQuery{
		PlayerID:    r.PathValue("playerID"),
		Limit:       limit,
		Season:      queryValue(r, "season"),
		Competition: queryValue(r, "competition"),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.playerService.GetPlayerMatches(ctx, query.PlayerID, query.Limit, query.Season, query.Competition)
	if err != nil {
		h.fail(ctx, w, "get player matches failed", err, "player_id", query.PlayerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPlayerMatchesDTO(matches))
}
