package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchcenter/internal/domain/competition"
	"github.com/riskibarqy/matchcenter/internal/domain/match"
	"github.com/riskibarqy/matchcenter/internal/domain/person"
	"github.com/riskibarqy/matchcenter/internal/domain/standing"
	"github.com/riskibarqy/matchcenter/internal/platform/logging"
)

type CompetitionDetails struct {
	Competition      competition.Competition
	Area             match.Area
	CurrentSeason    *competition.Season
	AvailableSeasons []competition.Season
	Standings        standing.Table
	Scorers          []competition.Scorer
	Matches          []match.Match
}

type CompetitionService struct {
	provider  FootballDataProvider
	clock     clockwork.Clock
	opts      Options
	formatter KickoffFormatter
	logger    *logging.Logger
}

func NewCompetitionService(provider FootballDataProvider, clock clockwork.Clock, opts Options, logger *logging.Logger) *CompetitionService {
	opts = opts.normalize()
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &CompetitionService{
		provider:  provider,
		clock:     clock,
		opts:      opts,
		formatter: NewKickoffFormatter(opts.Location, opts.KickoffLayout),
		logger:    logger,
	}
}

// GetCompetitionDetails resolves the season to show and loads its standings,
// scorers and matches. Only the competition lookup itself can fail the request.
func (s *CompetitionService) GetCompetitionDetails(ctx context.Context, code, season string, limit int) (CompetitionDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.GetCompetitionDetails")
	defer span.End()

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return CompetitionDetails{}, fmt.Errorf("%w: competition code is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = s.opts.CompetitionListLimit
	}

	raw, err := s.provider.FetchCompetition(ctx, code)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch competition failed", "competition", code, "error", err)
		return CompetitionDetails{}, newOperationError("GetCompetitionDetails", "Failed to fetch competition details", err)
	}

	item := normalizeCompetition(raw.ExternalCompetitionRef)
	item.Seasons = make([]competition.Season, 0, len(raw.Seasons))
	for _, rawSeason := range raw.Seasons {
		item.Seasons = append(item.Seasons, normalizeSeason(rawSeason))
	}
	if len(item.Seasons) == 0 && raw.CurrentSeason != nil {
		item.Seasons = append(item.Seasons, normalizeSeason(*raw.CurrentSeason))
	}

	out := CompetitionDetails{
		Competition:      item,
		Area:             match.Area{Name: raw.Area.Name, Flag: raw.Area.Flag},
		AvailableSeasons: competition.Available(item.Seasons, s.opts.SeasonCutoffYear),
		Standings:        standing.Table{},
		Scorers:          []competition.Scorer{},
		Matches:          []match.Match{},
	}

	current, ok := competition.ResolveCurrent(item.Seasons, season, s.clock.Now().Year())
	if !ok {
		return out, nil
	}
	out.CurrentSeason = &current
	seasonYear := current.StartYear()

	if rows, err := s.provider.FetchStandings(ctx, code, seasonYear); err != nil {
		s.logger.WarnContext(ctx, "fetch competition standings failed", "competition", code, "season", seasonYear, "error", err)
	} else {
		out.Standings = toTable(rows)
	}

	if scorers, err := s.provider.FetchScorers(ctx, code, seasonYear, limit); err != nil {
		s.logger.WarnContext(ctx, "fetch competition scorers failed", "competition", code, "season", seasonYear, "error", err)
	} else {
		out.Scorers = toScorers(scorers)
	}

	if matches, err := s.provider.FetchCompetitionMatches(ctx, code, seasonYear, limit); err != nil {
		s.logger.WarnContext(ctx, "fetch competition matches failed", "competition", code, "season", seasonYear, "error", err)
	} else {
		for _, m := range matches {
			out.Matches = append(out.Matches, buildScheduleMatch(m, s.formatter))
		}
	}

	return out, nil
}

func toScorers(rows []ExternalScorer) []competition.Scorer {
	out := make([]competition.Scorer, 0, len(rows))
	for _, row := range rows {
		var playerID int64
		if row.Player.ID != nil {
			playerID = *row.Player.ID
		}
		out = append(out, competition.Scorer{
			PlayerID:    playerID,
			PlayerName:  orDefault(row.Player.Name, person.Unknown),
			Nationality: row.Player.Nationality,
			Position:    orDefault(row.Player.Position, row.Player.Section),
			Team: competition.TeamRef{
				ID:        row.Team.ID,
				Name:      row.Team.Name,
				ShortName: row.Team.ShortName,
				TLA:       row.Team.TLA,
				Crest:     row.Team.Crest,
			},
			PlayedMatches: row.PlayedMatches,
			Goals:         row.Goals,
			Assists:       row.Assists,
			Penalties:     row.Penalties,
		})
	}
	return out
}
