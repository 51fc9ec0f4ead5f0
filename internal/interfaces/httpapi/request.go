package httpapi

import (
	"net/http"
	"strings"
)

type listMatchesQuery struct {
	Date string `validate:"omitempty,datetime=2006-01-02"`
}

type teamMatchesQuery struct {
	TeamID      string `validate:"required,numeric"`
	Season      string `validate:"omitempty,numeric,len=4"`
	Competition string `validate:"omitempty,alphanum,max=10"`
}

type teamQuery struct {
	TeamID string `validate:"required,numeric"`
	Season string `validate:"omitempty,numeric,len=4"`
}

type playerQuery struct {
	PlayerID string `validate:"required,numeric"`
}

type playerMatchesQuery struct {
	PlayerID    string `validate:"required,numeric"`
	Limit       int    `validate:"omitempty,min=1,max=100"`
	Season      string `validate:"omitempty,numeric,len=4"`
	Competition string `validate:"omitempty,alphanum,max=10"`
}

type competitionQuery struct {
	Code   string `validate:"required,alphanum,max=10"`
	Season string `validate:"omitempty,numeric,len=4"`
	Limit  int    `validate:"omitempty,min=1,max=100"`
}

// Minimum length is enforced by the search service so the message stays uniform.
type searchQuery struct {
	Q      string `validate:"max=100"`
	TeamID string `validate:"omitempty,numeric"`
}

type matchStatisticsQuery struct {
	MatchID string `validate:"required,numeric"`
}

func queryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
