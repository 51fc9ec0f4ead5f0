package httpapi

import "net/http"

func (h *Handler) GetCompetitionDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetitionDetails")
	defer span.End()

	limit, err := parseOptionalInt("limit", queryValue(r, "limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := competitionQuery{
		Code:   r.PathValue("code"),
		Season: queryValue(r, "season"),
		Limit:  limit,
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.competitionSvc.GetCompetitionDetails(ctx, query.Code, query.Season, query.Limit)
	if err != nil {
		h.fail(ctx, w, "get competition details failed", err, "competition", query.Code)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toCompetitionDetailsDTO(details))
}
