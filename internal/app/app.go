package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchcenter/external/footballdata"
	"github.com/riskibarqy/matchcenter/internal/config"
	"github.com/riskibarqy/matchcenter/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchcenter/internal/platform/logging"
	"github.com/riskibarqy/matchcenter/internal/platform/resilience"
	"github.com/riskibarqy/matchcenter/internal/usecase"
)

// NewHTTPServer wires the football-data client, the read services and the router.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("load display timezone %q: %w", cfg.DisplayTimezone, err)
	}

	clock := clockwork.NewRealClock()
	provider := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:    cfg.FootballDataBaseURL,
		Token:      cfg.FootballDataToken,
		Timeout:    cfg.FootballDataTimeout,
		MaxRetries: cfg.FootballDataMaxRetries,
		Logger:     logger,
		Clock:      clock,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballDataCircuitEnabled,
			FailureThreshold: cfg.FootballDataCircuitFailures,
			OpenTimeout:      cfg.FootballDataCircuitOpenAfter,
			HalfOpenMaxReq:   cfg.FootballDataCircuitHalfOpen,
		},
	})

	opts := optionsFromConfig(cfg, loc)
	servicesLogger := logger.Named("usecase")

	matchSvc := usecase.NewMatchService(provider, opts, servicesLogger)
	statisticsSvc := usecase.NewMatchStatisticsService(provider, clock, opts, servicesLogger)
	teamSvc := usecase.NewTeamService(provider, clock, opts, servicesLogger)
	playerSvc := usecase.NewPlayerService(provider, opts, servicesLogger)
	competitionSvc := usecase.NewCompetitionService(provider, clock, opts, servicesLogger)
	searchSvc := usecase.NewSearchService(provider, opts, servicesLogger)

	handler := httpapi.NewHandler(
		matchSvc,
		statisticsSvc,
		teamSvc,
		playerSvc,
		competitionSvc,
		searchSvc,
		logger.Named("http"),
	)
	router := httpapi.NewRouter(handler, logger.Named("http"), cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}, nil
}

func optionsFromConfig(cfg config.Config, loc *time.Location) usecase.Options {
	return usecase.Options{
		TeamSearchCompetitions:   cfg.TeamSearchCompetitions,
		PlayerSearchCompetitions: cfg.PlayerSearchCompetitions,
		TeamsPerCompetition:      cfg.TeamsPerCompetition,
		PlayerSearchEarlyExit:    cfg.PlayerSearchEarlyExit,
		TeamResultLimit:          cfg.TeamResultLimit,
		PlayerResultLimit:        cfg.PlayerResultLimit,
		ManagerResultLimit:       cfg.ManagerResultLimit,
		SeasonCutoffYear:         cfg.SeasonCutoffYear,
		FanoutWidth:              cfg.FanoutWidth,
		Location:                 loc,
		KickoffLayout:            cfg.KickoffLayout,
	}
}
