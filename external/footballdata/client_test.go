package footballdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchcenter/internal/platform/resilience"
	"github.com/riskibarqy/matchcenter/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		HTTPClient:     server.Client(),
		BaseURL:        server.URL,
		Token:          "secret-token",
		CircuitBreaker: breaker,
		Clock:          clockwork.NewFakeClockAt(time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)),
	})
}

func TestFetchMatches_SendsTokenAndMapsPayload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Auth-Token"); got != "secret-token" {
			t.Errorf("expected auth token header, got=%q", got)
		}
		if r.URL.Path != "/matches" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("date"); got != "2026-10-17" {
			t.Errorf("expected date query, got=%q", got)
		}
		_, _ = w.Write([]byte(`{"matches":[{
			"id": 101,
			"utcDate": "2026-10-17T19:00:00Z",
			"status": "finished",
			"matchday": 9,
			"stage": "REGULAR_SEASON",
			"venue": "Camp Nou",
			"area": {"name": "Spain", "flag": "es.svg"},
			"competition": {"id": 2014, "name": "Primera Division", "code": "PD", "emblem": "pd.png"},
			"homeTeam": {"id": 81, "name": "FC Barcelona", "shortName": "Barça", "tla": "FCB", "crest": "fcb.png"},
			"awayTeam": {"id": 86, "name": "Real Madrid CF", "shortName": "Real Madrid", "tla": "RMA", "crest": "rma.png"},
			"score": {"fullTime": {"home": 2, "away": 1}, "halfTime": {"home": 1, "away": 0}}
		}]}`))
	}, resilience.CircuitBreakerConfig{})

	matches, err := client.FetchMatches(context.Background(), usecase.MatchFilter{Date: "2026-10-17"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one match, got=%d", len(matches))
	}

	m := matches[0]
	if m.ID != 101 || m.Status != "FINISHED" {
		t.Fatalf("unexpected match identity: id=%d status=%s", m.ID, m.Status)
	}
	if m.Competition.Code != "PD" || m.Area.Name != "Spain" {
		t.Fatalf("unexpected competition or area: %+v %+v", m.Competition, m.Area)
	}
	if m.Score.FullTime.Home == nil || *m.Score.FullTime.Home != 2 {
		t.Fatalf("expected full time home=2, got=%v", m.Score.FullTime.Home)
	}
	if m.HomeTeam.Name != "FC Barcelona" || m.AwayTeam.TLA != "RMA" {
		t.Fatalf("unexpected teams: %+v vs %+v", m.HomeTeam, m.AwayTeam)
	}
}

func TestFetchMatch_AcceptsWrappedPayload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"match":{"id": 55, "status": "SCHEDULED", "venue": "Anfield",
			"homeTeam": {"id": 64, "name": "Liverpool FC", "formation": "4-3-3"},
			"awayTeam": {"id": 65, "name": "Manchester City FC"},
			"referees": [{"name": "Michael Oliver"}]}}`))
	}, resilience.CircuitBreakerConfig{})

	detail, err := client.FetchMatch(context.Background(), "55")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Match.ID != 55 || detail.Match.Venue != "Anfield" {
		t.Fatalf("unexpected match: %+v", detail.Match)
	}
	if detail.Home.Formation != "4-3-3" {
		t.Fatalf("expected home formation, got=%q", detail.Home.Formation)
	}
	if len(detail.Referees) != 1 {
		t.Fatalf("expected one referee, got=%d", len(detail.Referees))
	}
}

func TestFetchMatch_AcceptsBarePayload(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": 56, "status": "TIMED", "homeTeam": {"id": 1, "name": "A"}, "awayTeam": {"id": 2, "name": "B"}}`))
	}, resilience.CircuitBreakerConfig{})

	detail, err := client.FetchMatch(context.Background(), "56")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Match.ID != 56 || detail.Home.Name != "A" {
		t.Fatalf("unexpected detail: %+v", detail.Match)
	}
}

func TestFetchTeam_NotFoundMapsToSentinel(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"The resource you are looking for does not exist."}`))
	}, resilience.CircuitBreakerConfig{})

	_, err := client.FetchTeam(context.Background(), "999999")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}

func TestFetchStandings_PicksTotalTable(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("season"); got != "2025" {
			t.Errorf("expected season=2025, got=%q", got)
		}
		_, _ = w.Write([]byte(`{"standings":[
			{"type":"HOME","table":[{"position":1,"team":{"id":9,"name":"Home Leader"}}]},
			{"type":"TOTAL","table":[{"position":1,"team":{"id":64,"name":"Liverpool FC"},"points":30},{"position":2,"team":{"id":65,"name":"Manchester City FC"},"points":28}]}
		]}`))
	}, resilience.CircuitBreakerConfig{})

	rows, err := client.FetchStandings(context.Background(), "PL", 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected two rows, got=%d", len(rows))
	}
	if rows[0].Team.ID != 64 || rows[0].Points != 30 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
}

func TestFetchCompetitionMatches_TruncatesToLimit(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"matches":[{"id":1},{"id":2},{"id":3}]}`))
	}, resilience.CircuitBreakerConfig{})

	matches, err := client.FetchCompetitionMatches(context.Background(), "PL", 2025, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 || matches[1].ID != 2 {
		t.Fatalf("expected first two matches, got=%+v", matches)
	}
}

func TestClient_CircuitOpensAfterTransientFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	for range 2 {
		if _, err := client.FetchPerson(context.Background(), "44"); err == nil {
			t.Fatalf("expected upstream failure")
		}
	}

	_, err := client.FetchPerson(context.Background(), "44")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got=%v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected open circuit to skip upstream, hits=%d", got)
	}
}

func TestClient_NotFoundDoesNotTripCircuit(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	for range 3 {
		_, err := client.FetchCompetition(context.Background(), "XX")
		if !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got=%v", err)
		}
	}
	if got := hits.Load(); got != 3 {
		t.Fatalf("expected every call to reach upstream, hits=%d", got)
	}
}

func TestSanitizeSensitiveText_RedactsToken(t *testing.T) {
	t.Parallel()

	got := sanitizeSensitiveText("dial https://x?token=abc123 failed", "abc123")
	if got != "dial https://x?token=REDACTED failed" {
		t.Fatalf("unexpected sanitized text: %q", got)
	}
}
