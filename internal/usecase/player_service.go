package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchcenter/internal/domain/match"
	"github.com/riskibarqy/matchcenter/internal/domain/person"
	"github.com/riskibarqy/matchcenter/internal/platform/logging"
)

// PlayerAggregations are the career counters the provider returns with a player's matches.
type PlayerAggregations struct {
	MatchesPlayed int
	StartingXI    int
	MinutesPlayed int
	Goals         int
	Assists       int
	YellowCards   int
	RedCards      int
}

type PlayerMatches struct {
	Player  person.Person
	Stats   PlayerAggregations
	Matches []match.Match
}

type PlayerService struct {
	provider  FootballDataProvider
	opts      Options
	formatter KickoffFormatter
	logger    *logging.Logger
}

func NewPlayerService(provider FootballDataProvider, opts Options, logger *logging.Logger) *PlayerService {
	opts = opts.normalize()
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		provider:  provider,
		opts:      opts,
		formatter: NewKickoffFormatter(opts.Location, opts.KickoffLayout),
		logger:    logger,
	}
}

func (s *PlayerService) GetPlayerDetails(ctx context.Context, playerID string) (person.Person, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerDetails")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return person.Person{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	raw, err := s.provider.FetchPerson(ctx, playerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch player failed", "player_id", playerID, "error", err)
		return person.Person{}, newOperationError("GetPlayerDetails", "Failed to fetch player details", err)
	}

	return NormalizePerson(raw, person.RolePlayer), nil
}

// GetPlayerMatches lists a player's recent matches. A non-positive limit uses
// the configured default.
func (s *PlayerService) GetPlayerMatches(ctx context.Context, playerID string, limit int, season, competitionCode string) (PlayerMatches, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerMatches")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerMatches{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = s.opts.PlayerMatchesLimit
	}

	raw, err := s.provider.FetchPersonMatches(ctx, playerID, MatchFilter{
		Limit:        limit,
		Season:       strings.TrimSpace(season),
		Competitions: strings.TrimSpace(competitionCode),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch player matches failed", "player_id", playerID, "limit", limit, "error", err)
		return PlayerMatches{}, newOperationError("GetPlayerMatches", "Failed to fetch player matches", err)
	}

	matches := make([]match.Match, 0, len(raw.Matches))
	for _, item := range raw.Matches {
		matches = append(matches, buildTeamMatch(item, s.formatter))
	}

	agg := raw.Aggregations
	return PlayerMatches{
		Player: NormalizePerson(raw.Person, person.RolePlayer),
		Stats: PlayerAggregations{
			MatchesPlayed: agg.MatchesOnPitch,
			StartingXI:    agg.StartingXI,
			MinutesPlayed: agg.MinutesPlayed,
			Goals:         agg.Goals,
			Assists:       agg.Assists,
			YellowCards:   agg.YellowCards,
			RedCards:      agg.RedCards,
		},
		Matches: matches,
	}, nil
}
