package footballdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchcenter/internal/platform/logging"
	"github.com/riskibarqy/matchcenter/internal/platform/resilience"
	"github.com/riskibarqy/matchcenter/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL = "https://api.football-data.org/v4"
	authHeader     = "X-Auth-Token"
	maxBodyBytes   = 6 << 20
)

var errFootballDataTransient = crerr.New("football-data transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Clock          clockwork.Clock
}

// Client reads football-data.org v4. Identical concurrent GETs share one
// upstream request.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	clock          clockwork.Clock
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         singleflight.Group
}

var _ usecase.FootballDataProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger.Named("footballdata"),
		clock:          clock,
		breaker:        resilience.NewCircuitBreaker(breakerCfg, clock),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchMatches(ctx context.Context, filter usecase.MatchFilter) ([]usecase.ExternalMatch, error) {
	query := map[string]string{"date": filter.Date}
	var payload matchesEnvelope
	if _, err := c.doJSON(ctx, "/matches", query, &payload); err != nil {
		return nil, fmt.Errorf("fetch matches date=%q: %w", filter.Date, err)
	}
	return mapMatches(payload.Matches), nil
}

func (c *Client) FetchMatch(ctx context.Context, matchID string) (usecase.ExternalMatchDetail, error) {
	path := "/matches/" + url.PathEscape(matchID)
	var wrapped matchDetailEnvelope
	raw, err := c.doJSON(ctx, path, nil, &wrapped)
	if err != nil {
		return usecase.ExternalMatchDetail{}, fmt.Errorf("fetch match match_id=%s: %w", matchID, err)
	}
	if wrapped.Match != nil {
		return mapMatchDetail(*wrapped.Match), nil
	}

	var payload matchDTO
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return usecase.ExternalMatchDetail{}, fmt.Errorf("decode match match_id=%s: %w", matchID, err)
	}
	return mapMatchDetail(payload), nil
}

func (c *Client) FetchTeamMatches(ctx context.Context, teamID string, filter usecase.MatchFilter) ([]usecase.ExternalMatch, error) {
	path := "/teams/" + url.PathEscape(teamID) + "/matches"
	query := map[string]string{
		"season":       filter.Season,
		"competitions": filter.Competitions,
	}
	var payload matchesEnvelope
	if _, err := c.doJSON(ctx, path, query, &payload); err != nil {
		return nil, fmt.Errorf("fetch team matches team_id=%s: %w", teamID, err)
	}
	return mapMatches(payload.Matches), nil
}

func (c *Client) FetchTeam(ctx context.Context, teamID string) (usecase.ExternalTeam, error) {
	var payload teamDTO
	if _, err := c.doJSON(ctx, "/teams/"+url.PathEscape(teamID), nil, &payload); err != nil {
		return usecase.ExternalTeam{}, fmt.Errorf("fetch team team_id=%s: %w", teamID, err)
	}
	return mapTeam(payload), nil
}

func (c *Client) FetchPerson(ctx context.Context, personID string) (usecase.ExternalPerson, error) {
	var payload personDTO
	if _, err := c.doJSON(ctx, "/persons/"+url.PathEscape(personID), nil, &payload); err != nil {
		return usecase.ExternalPerson{}, fmt.Errorf("fetch person person_id=%s: %w", personID, err)
	}
	return mapPerson(payload), nil
}

func (c *Client) FetchPersonMatches(ctx context.Context, personID string, filter usecase.MatchFilter) (usecase.ExternalPersonMatches, error) {
	path := "/persons/" + url.PathEscape(personID) + "/matches"
	query := map[string]string{
		"limit":        positiveInt(filter.Limit),
		"season":       filter.Season,
		"competitions": filter.Competitions,
	}
	var payload personMatchesEnvelope
	if _, err := c.doJSON(ctx, path, query, &payload); err != nil {
		return usecase.ExternalPersonMatches{}, fmt.Errorf("fetch person matches person_id=%s: %w", personID, err)
	}

	agg := payload.Aggregations
	return usecase.ExternalPersonMatches{
		Person: mapPerson(payload.Person),
		Aggregations: usecase.ExternalAggregations{
			MatchesOnPitch: agg.MatchesOnPitch,
			StartingXI:     agg.StartingXI,
			MinutesPlayed:  agg.MinutesPlayed,
			Goals:          agg.Goals,
			OwnGoals:       agg.OwnGoals,
			Assists:        agg.Assists,
			YellowCards:    agg.YellowCards,
			YellowRedCards: agg.YellowRedCards,
			RedCards:       agg.RedCards,
		},
		Matches: mapMatches(payload.Matches),
	}, nil
}

func (c *Client) FetchCompetition(ctx context.Context, code string) (usecase.ExternalCompetition, error) {
	var payload competitionDTO
	if _, err := c.doJSON(ctx, "/competitions/"+url.PathEscape(code), nil, &payload); err != nil {
		return usecase.ExternalCompetition{}, fmt.Errorf("fetch competition code=%s: %w", code, err)
	}
	return mapCompetition(payload), nil
}

func (c *Client) FetchStandings(ctx context.Context, code string, season int) ([]usecase.ExternalStandingRow, error) {
	path := "/competitions/" + url.PathEscape(code) + "/standings"
	var payload standingsEnvelope
	if _, err := c.doJSON(ctx, path, map[string]string{"season": positiveInt(season)}, &payload); err != nil {
		return nil, fmt.Errorf("fetch standings code=%s season=%d: %w", code, season, err)
	}
	return mapStandings(payload.Standings), nil
}

func (c *Client) FetchScorers(ctx context.Context, code string, season, limit int) ([]usecase.ExternalScorer, error) {
	path := "/competitions/" + url.PathEscape(code) + "/scorers"
	query := map[string]string{
		"season": positiveInt(season),
		"limit":  positiveInt(limit),
	}
	var payload scorersEnvelope
	if _, err := c.doJSON(ctx, path, query, &payload); err != nil {
		return nil, fmt.Errorf("fetch scorers code=%s season=%d: %w", code, season, err)
	}
	return mapScorers(payload.Scorers), nil
}

func (c *Client) FetchCompetitionTeams(ctx context.Context, code string, season int) (usecase.ExternalCompetitionTeams, error) {
	path := "/competitions/" + url.PathEscape(code) + "/teams"
	var payload competitionTeamsEnvelope
	if _, err := c.doJSON(ctx, path, map[string]string{"season": positiveInt(season)}, &payload); err != nil {
		return usecase.ExternalCompetitionTeams{}, fmt.Errorf("fetch competition teams code=%s: %w", code, err)
	}

	teams := make([]usecase.ExternalTeam, 0, len(payload.Teams))
	for _, item := range payload.Teams {
		teams = append(teams, mapTeam(item))
	}
	return usecase.ExternalCompetitionTeams{
		Competition: mapCompetitionRef(payload.Competition),
		Season:      mapSeason(payload.Season),
		Teams:       teams,
	}, nil
}

// FetchCompetitionMatches returns at most limit matches; the endpoint itself
// has no paging, so the cut happens here.
func (c *Client) FetchCompetitionMatches(ctx context.Context, code string, season, limit int) ([]usecase.ExternalMatch, error) {
	path := "/competitions/" + url.PathEscape(code) + "/matches"
	var payload matchesEnvelope
	if _, err := c.doJSON(ctx, path, map[string]string{"season": positiveInt(season)}, &payload); err != nil {
		return nil, fmt.Errorf("fetch competition matches code=%s season=%d: %w", code, season, err)
	}
	matches := payload.Matches
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return mapMatches(matches), nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "football-data circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: football data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		if value = strings.TrimSpace(value); value != "" {
			values.Set(key, value)
		}
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			c.breaker.Record(reqErr, isFootballDataCircuitFailure)
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		if c.token != "" {
			req.Header.Set(authHeader, c.token)
		}

		started := c.clock.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errFootballDataTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			c.logger.DebugContext(ctx, "football-data response",
				"url", fullURL,
				"status", resp.StatusCode,
				"duration", c.clock.Since(started),
			)

			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errFootballDataTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusNotFound:
				return nil, fmt.Errorf("%w: provider status=%d body=%s", usecase.ErrNotFound, resp.StatusCode, abbreviateBody(raw))
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errFootballDataTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := c.clock.NewTimer(time.Duration(attempt+1) * time.Second)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.Chan():
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "football-data request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return value
}

func isFootballDataCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errFootballDataTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func positiveInt(v int) string {
	if v <= 0 {
		return ""
	}
	return strconv.Itoa(v)
}
