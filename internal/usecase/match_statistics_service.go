package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchcenter/internal/domain/competition"
	"github.com/riskibarqy/matchcenter/internal/domain/match"
	"github.com/riskibarqy/matchcenter/internal/domain/standing"
	"github.com/riskibarqy/matchcenter/internal/domain/team"
	"github.com/riskibarqy/matchcenter/internal/platform/logging"
)

type MatchStatisticsService struct {
	provider  FootballDataProvider
	clock     clockwork.Clock
	formatter KickoffFormatter
	logger    *logging.Logger
}

func NewMatchStatisticsService(
	provider FootballDataProvider,
	clock clockwork.Clock,
	opts Options,
	logger *logging.Logger,
) *MatchStatisticsService {
	opts = opts.normalize()
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchStatisticsService{
		provider:  provider,
		clock:     clock,
		formatter: NewKickoffFormatter(opts.Location, opts.KickoffLayout),
		logger:    logger,
	}
}

// GetMatchStatistics loads a match and attaches each side's league position.
// Standings failures never fail the request; ranks stay unknown instead.
func (s *MatchStatisticsService) GetMatchStatistics(ctx context.Context, matchID string) (match.Statistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchStatisticsService.GetMatchStatistics")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Statistics{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	detail, err := s.provider.FetchMatch(ctx, matchID)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch match detail failed", "match_id", matchID, "error", err)
		return match.Statistics{}, newOperationError("GetMatchStatistics", "Failed to fetch match statistics", err)
	}

	positions := s.leaguePositions(ctx, detail.Match)

	home := NormalizeTeam(detail.Home)
	home.LeagueRank = rankFor(positions, home.ID)
	away := NormalizeTeam(detail.Away)
	away.LeagueRank = rankFor(positions, away.ID)

	raw := detail.Match
	return match.Statistics{
		General: match.GeneralInfo{
			MatchID:       raw.ID,
			Date:          s.formatter.Format(raw.UTCDate),
			Status:        raw.Status,
			Venue:         orDefault(raw.Venue, match.NoVenueInfo),
			Duration:      orDefault(raw.Score.Duration, match.NoDurationInfo),
			Competition:   strings.TrimSpace(raw.Competition.Name),
			FullTimeScore: toScore(raw.Score.FullTime).String(),
			HalfTimeScore: toScore(raw.Score.HalfTime).String(),
			PenaltyScore:  toScore(raw.Score.Penalties).String(),
			Referees:      detail.Referees,
		},
		HomeTeam: home,
		AwayTeam: away,
		Extra: match.ExtraInfo{
			Competition:   extraCompetition(raw.Competition),
			Goals:         detail.Goals,
			Bookings:      detail.Bookings,
			Substitutions: detail.Substitutions,
		},
		HomeStats: sideStatistics(detail.Home.Statistics, goalsFor(raw.Score.FullTime.Home, raw.Score.HalfTime.Home)),
		AwayStats: sideStatistics(detail.Away.Statistics, goalsFor(raw.Score.FullTime.Away, raw.Score.HalfTime.Away)),
	}, nil
}

// leaguePositions fetches the standings for the match's season, retrying once
// with the current calendar year. A nil map means no ranks are available.
func (s *MatchStatisticsService) leaguePositions(ctx context.Context, raw ExternalMatch) map[int64]int {
	code := strings.TrimSpace(raw.Competition.Code)
	if code == "" {
		return nil
	}

	currentYear := s.clock.Now().Year()
	seasonYear := currentYear
	if kickoff, ok := s.formatter.Parse(raw.UTCDate); ok {
		seasonYear = competition.SeasonYearOf(kickoff)
	}

	rows, err := s.provider.FetchStandings(ctx, code, seasonYear)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch standings failed, retrying with current year",
			"competition", code,
			"season", seasonYear,
			"error", err,
		)
		rows, err = s.provider.FetchStandings(ctx, code, currentYear)
		if err != nil {
			s.logger.WarnContext(ctx, "fetch standings fallback failed, league ranks unavailable",
				"competition", code,
				"season", currentYear,
				"error", err,
			)
			return nil
		}
	}

	return toTable(rows).Positions()
}

func rankFor(positions map[int64]int, teamID int64) team.Rank {
	if positions == nil || teamID <= 0 {
		return team.Rank{}
	}
	position, ok := positions[teamID]
	if !ok {
		return team.Rank{}
	}
	return team.RankOf(position)
}

func toTable(rows []ExternalStandingRow) standing.Table {
	out := make(standing.Table, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.Row{
			Position:       row.Position,
			TeamID:         row.Team.ID,
			TeamName:       row.Team.Name,
			TeamShortName:  row.Team.ShortName,
			TeamTLA:        row.Team.TLA,
			TeamCrest:      row.Team.Crest,
			PlayedGames:    row.PlayedGames,
			Won:            row.Won,
			Draw:           row.Draw,
			Lost:           row.Lost,
			Points:         row.Points,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Form:           row.Form,
		})
	}
	return out
}

func extraCompetition(raw ExternalCompetitionRef) *competition.Competition {
	if raw.ID == 0 && raw.Name == "" && raw.Code == "" {
		return nil
	}
	out := normalizeCompetition(raw)
	return &out
}

func sideStatistics(raw map[string]any, goals int) match.SideStatistics {
	stat := func(key string) match.StatValue {
		return match.StatOf(raw[key])
	}
	return match.SideStatistics{
		CornerKicks:    stat("corner_kicks"),
		FreeKicks:      stat("free_kicks"),
		GoalKicks:      stat("goal_kicks"),
		Offsides:       stat("offsides"),
		Fouls:          stat("fouls"),
		BallPossession: stat("ball_possession"),
		Saves:          stat("saves"),
		ThrowIns:       stat("throw_ins"),
		Shots:          stat("shots"),
		ShotsOnGoal:    stat("shots_on_goal"),
		ShotsOffGoal:   stat("shots_off_goal"),
		YellowCards:    stat("yellow_cards"),
		YellowRedCards: stat("yellow_red_cards"),
		RedCards:       stat("red_cards"),
		Goals:          goals,
	}
}

func goalsFor(fullTime, halfTime *int) int {
	if fullTime != nil {
		return *fullTime
	}
	if halfTime != nil {
		return *halfTime
	}
	return 0
}
