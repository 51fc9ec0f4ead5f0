package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchcenter/internal/domain/competition"
	"github.com/riskibarqy/matchcenter/internal/domain/person"
	"github.com/riskibarqy/matchcenter/internal/domain/team"
	"github.com/riskibarqy/matchcenter/internal/platform/logging"
)

// TeamFilters are the competitions and seasons a team's history can be filtered by.
type TeamFilters struct {
	Competitions     []competition.Competition
	Seasons          []competition.Season
	AvailableSeasons []competition.Season
	CurrentSeason    *competition.Season
}

type TeamService struct {
	provider FootballDataProvider
	clock    clockwork.Clock
	opts     Options
	logger   *logging.Logger
}

func NewTeamService(provider FootballDataProvider, clock clockwork.Clock, opts Options, logger *logging.Logger) *TeamService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		provider: provider,
		clock:    clock,
		opts:     opts.normalize(),
		logger:   logger,
	}
}

// GetTeamSquad returns the roster with the coach as the first member.
func (s *TeamService) GetTeamSquad(ctx context.Context, teamID string) (team.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamSquad")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Squad{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	raw, err := s.provider.FetchTeam(ctx, teamID)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch team squad failed", "team_id", teamID, "error", err)
		return team.Squad{}, newOperationError("GetTeamSquad", "Failed to fetch team squad", err)
	}

	members := make([]person.Person, 0, len(raw.Squad)+1)
	members = append(members, NormalizeCoach(raw.Coach))
	for _, item := range raw.Squad {
		members = append(members, NormalizePerson(item, person.RolePlayer))
	}

	return team.Squad{
		TeamID:  raw.ID,
		Team:    orDefault(raw.Name, team.Unknown),
		Crest:   strings.TrimSpace(raw.Crest),
		Members: members,
	}, nil
}

// GetTeamFilters derives the competitions and seasons from a team's match history.
func (s *TeamService) GetTeamFilters(ctx context.Context, teamID, requestedSeason string) (TeamFilters, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamFilters")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return TeamFilters{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	raw, err := s.provider.FetchTeamMatches(ctx, teamID, MatchFilter{})
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch team matches for filters failed", "team_id", teamID, "error", err)
		return TeamFilters{}, newOperationError("GetTeamFilters", "Failed to fetch team filters", err)
	}

	appearances := make([]competition.Appearance, 0, len(raw))
	for _, item := range raw {
		appearances = append(appearances, competition.Appearance{
			Competition: normalizeCompetition(item.Competition),
			Season:      normalizeSeason(item.Season),
		})
	}
	competitions, seen := competition.Extract(appearances)
	seasons := slices.Clone(seen)
	competition.SortDescending(seasons)

	out := TeamFilters{
		Competitions:     competitions,
		Seasons:          seasons,
		AvailableSeasons: competition.Available(seen, s.opts.SeasonCutoffYear),
	}
	// The fallback is the first season in provider order, not the newest.
	if current, ok := competition.ResolveCurrent(seen, requestedSeason, s.clock.Now().Year()); ok {
		out.CurrentSeason = &current
	}
	return out, nil
}
