package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/matchcenter/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := listMatchesQuery{Date: queryValue(r, "date")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.matchService.ListMatches(ctx, query.Date)
	if err != nil {
		h.fail(ctx, w, "list matches failed", err, "date", query.Date)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toCountryGroupDTOs(groups))
}

func (h *Handler) GetMatchStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchStatistics")
	defer span.End()

	if section := r.PathValue("section"); section != "statistics" {
		writeError(ctx, w, fmt.Errorf("%w: no route for /api/%s/%s", usecase.ErrNotFound, r.PathValue("matchID"), section))
		return
	}

	query := matchStatisticsQuery{MatchID: r.PathValue("matchID")}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.statisticsService.GetMatchStatistics(ctx, query.MatchID)
	if err != nil {
		h.fail(ctx, w, "get match statistics failed", err, "match_id", query.MatchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchStatisticsDTO(stats))
}
