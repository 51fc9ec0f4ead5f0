package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchcenter/internal/domain/match"
	"github.com/riskibarqy/matchcenter/internal/platform/logging"
)

const (
	unknownCountry = "Unknown Country"
	unknownLeague  = "Unknown League"
	unknownTeam    = "Unknown"
)

type MatchService struct {
	provider  FootballDataProvider
	formatter KickoffFormatter
	logger    *logging.Logger
}

func NewMatchService(provider FootballDataProvider, opts Options, logger *logging.Logger) *MatchService {
	opts = opts.normalize()
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		provider:  provider,
		formatter: NewKickoffFormatter(opts.Location, opts.KickoffLayout),
		logger:    logger,
	}
}

// ListMatches returns the day's schedule grouped by country and competition. An
// empty date lets the provider pick its default window.
func (s *MatchService) ListMatches(ctx context.Context, date string) ([]match.CountryGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	date = strings.TrimSpace(date)
	raw, err := s.provider.FetchMatches(ctx, MatchFilter{Date: date})
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch matches failed", "date", date, "error", err)
		return nil, newOperationError("ListMatches", "Failed to fetch matches", err)
	}

	s.logger.DebugContext(ctx, "matches fetched", "date", date, "count", len(raw))
	return GroupMatches(raw, s.formatter), nil
}

// ListTeamMatches returns a team's fixtures and results in kickoff order.
func (s *MatchService) ListTeamMatches(ctx context.Context, teamID, season, competitionCode string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListTeamMatches")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	raw, err := s.provider.FetchTeamMatches(ctx, teamID, MatchFilter{
		Season:       strings.TrimSpace(season),
		Competitions: strings.TrimSpace(competitionCode),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch team matches failed", "team_id", teamID, "error", err)
		return nil, newOperationError("ListTeamMatches", "Failed to fetch team matches", err)
	}

	out := make([]match.Match, 0, len(raw))
	for _, item := range raw {
		out = append(out, buildTeamMatch(item, s.formatter))
	}
	match.SortChronological(out)
	return out, nil
}

// GroupMatches derives status and score for every raw match and buckets the
// result by country and competition.
func GroupMatches(raw []ExternalMatch, formatter KickoffFormatter) []match.CountryGroup {
	items := make([]match.Match, 0, len(raw))
	for _, item := range raw {
		items = append(items, buildScheduleMatch(item, formatter))
	}
	return match.Group(items)
}

func buildScheduleMatch(raw ExternalMatch, formatter KickoffFormatter) match.Match {
	out := baseMatch(raw, formatter)
	fullTime := toScore(raw.Score.FullTime)
	out.Status = match.DeriveStatus(raw.Status, fullTime.Home != nil)
	out.Score = match.DeriveScore(out.Status, fullTime, toScore(raw.Score.HalfTime), out.Kickoff)
	return out
}

func buildTeamMatch(raw ExternalMatch, formatter KickoffFormatter) match.Match {
	out := baseMatch(raw, formatter)
	fullTime := toScore(raw.Score.FullTime)
	out.Status = match.DeriveStatus(raw.Status, fullTime.Home != nil)
	out.Score = match.ResultScore(fullTime)
	return out
}

func baseMatch(raw ExternalMatch, formatter KickoffFormatter) match.Match {
	out := match.Match{
		ID: raw.ID,
		HomeTeam: match.Side{
			ID:    raw.HomeTeam.ID,
			Name:  orDefault(raw.HomeTeam.Name, unknownTeam),
			Crest: strings.TrimSpace(raw.HomeTeam.Crest),
		},
		AwayTeam: match.Side{
			ID:    raw.AwayTeam.ID,
			Name:  orDefault(raw.AwayTeam.Name, unknownTeam),
			Crest: strings.TrimSpace(raw.AwayTeam.Crest),
		},
		HomeGoals: raw.Score.FullTime.Home,
		AwayGoals: raw.Score.FullTime.Away,
		Competition: match.CompetitionRef{
			Name:   orDefault(raw.Competition.Name, unknownLeague),
			Emblem: strings.TrimSpace(raw.Competition.Emblem),
			Code:   strings.TrimSpace(raw.Competition.Code),
		},
		Country: match.Area{
			Name: orDefault(raw.Area.Name, unknownCountry),
			Flag: strings.TrimSpace(raw.Area.Flag),
		},
		RawStatus: raw.Status,
		Kickoff:   formatter.Format(raw.UTCDate),
		Venue:     strings.TrimSpace(raw.Venue),
		Stage:     strings.TrimSpace(raw.Stage),
	}
	if kickoff, ok := formatter.Parse(raw.UTCDate); ok {
		out.KickoffAt = kickoff
	}
	if raw.Matchday != nil {
		out.Matchday = *raw.Matchday
	}
	return out
}

func toScore(raw ExternalScore) match.Score {
	return match.Score{Home: raw.Home, Away: raw.Away}
}
