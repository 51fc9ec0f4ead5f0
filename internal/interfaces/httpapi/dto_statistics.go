package httpapi

import (
	"github.com/riskibarqy/matchcenter/internal/domain/competition"
	"github.com/riskibarqy/matchcenter/internal/domain/match"
	"github.com/riskibarqy/matchcenter/internal/domain/team"
)

type generalInfoDTO struct {
	MatchID       int64   `json:"match_id"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	Venue         string  `json:"venue"`
	Duration      string  `json:"duration"`
	Competition   *string `json:"competition"`
	FullTimeScore *string `json:"full_time_score"`
	HalfTimeScore *string `json:"half_time_score"`
	PenaltyScore  *string `json:"penalty_score"`
	Referees      any     `json:"referees"`
}

type coachDTO struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
}

type matchTeamDTO struct {
	ID         *int64   `json:"id"`
	Name       string   `json:"name"`
	ShortName  string   `json:"shortName"`
	TLA        string   `json:"tla"`
	Crest      string   `json:"crest"`
	Coach      coachDTO `json:"coach"`
	LeagueRank any      `json:"leagueRank"`
	Formation  string   `json:"formation"`
	Lineup     []any    `json:"lineup"`
	Bench      []any    `json:"bench"`
}

type extraCompetitionDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Type   string `json:"type,omitempty"`
	Emblem string `json:"emblem"`
}

type extraInfoDTO struct {
	Competition   *extraCompetitionDTO `json:"competition"`
	Goals         any                  `json:"goals"`
	Bookings      any                  `json:"bookings"`
	Substitutions any                  `json:"substitutions"`
}

type sideStatisticsDTO struct {
	CornerKicks    any `json:"corner_kicks"`
	FreeKicks      any `json:"free_kicks"`
	GoalKicks      any `json:"goal_kicks"`
	Offsides       any `json:"offsides"`
	Fouls          any `json:"fouls"`
	BallPossession any `json:"ball_possession"`
	Saves          any `json:"saves"`
	ThrowIns       any `json:"throw_ins"`
	Shots          any `json:"shots"`
	ShotsOnGoal    any `json:"shots_on_goal"`
	ShotsOffGoal   any `json:"shots_off_goal"`
	YellowCards    any `json:"yellow_cards"`
	YellowRedCards any `json:"yellow_red_cards"`
	RedCards       any `json:"red_cards"`
	Goals          int `json:"goals"`
}

type statisticsPairDTO struct {
	HomeTeam sideStatisticsDTO `json:"homeTeam"`
	AwayTeam sideStatisticsDTO `json:"awayTeam"`
}

type matchStatisticsDTO struct {
	GeneralInfo generalInfoDTO    `json:"generalInfo"`
	HomeTeam    matchTeamDTO      `json:"homeTeam"`
	AwayTeam    matchTeamDTO      `json:"awayTeam"`
	ExtraInfo   extraInfoDTO      `json:"extraInfo"`
	Statistics  statisticsPairDTO `json:"statistics"`
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// listOr keeps a non-empty event list and otherwise shows the placeholder.
func listOr(items []any, placeholder string) any {
	if len(items) == 0 {
		return placeholder
	}
	return items
}

func statOr(v match.StatValue) any {
	if v.Value == nil {
		return match.NoData
	}
	return v.Value
}

func emptyIfNil(items []any) []any {
	if items == nil {
		return []any{}
	}
	return items
}

func toMatchTeamDTO(t team.Team) matchTeamDTO {
	var id *int64
	if t.HasID() {
		id = &t.ID
	}
	var rank any = t.LeagueRank.String()
	if t.LeagueRank.Known {
		rank = t.LeagueRank.Position
	}
	return matchTeamDTO{
		ID:         id,
		Name:       t.Name,
		ShortName:  t.ShortName,
		TLA:        t.TLA,
		Crest:      t.Crest,
		Coach:      coachDTO{Name: t.Coach.Name, Nationality: t.Coach.Nationality},
		LeagueRank: rank,
		Formation:  t.Formation,
		Lineup:     emptyIfNil(t.Lineup),
		Bench:      emptyIfNil(t.Bench),
	}
}

func toExtraCompetitionDTO(c *competition.Competition) *extraCompetitionDTO {
	if c == nil {
		return nil
	}
	return &extraCompetitionDTO{ID: c.ID, Name: c.Name, Code: c.Code, Type: c.Type, Emblem: c.Emblem}
}

func toSideStatisticsDTO(s match.SideStatistics) sideStatisticsDTO {
	return sideStatisticsDTO{
		CornerKicks:    statOr(s.CornerKicks),
		FreeKicks:      statOr(s.FreeKicks),
		GoalKicks:      statOr(s.GoalKicks),
		Offsides:       statOr(s.Offsides),
		Fouls:          statOr(s.Fouls),
		BallPossession: statOr(s.BallPossession),
		Saves:          statOr(s.Saves),
		ThrowIns:       statOr(s.ThrowIns),
		Shots:          statOr(s.Shots),
		ShotsOnGoal:    statOr(s.ShotsOnGoal),
		ShotsOffGoal:   statOr(s.ShotsOffGoal),
		YellowCards:    statOr(s.YellowCards),
		YellowRedCards: statOr(s.YellowRedCards),
		RedCards:       statOr(s.RedCards),
		Goals:          s.Goals,
	}
}

func toMatchStatisticsDTO(in match.Statistics) matchStatisticsDTO {
	g := in.General
	return matchStatisticsDTO{
		GeneralInfo: generalInfoDTO{
			MatchID:       g.MatchID,
			Date:          g.Date,
			Status:        g.Status,
			Venue:         g.Venue,
			Duration:      g.Duration,
			Competition:   optionalString(g.Competition),
			FullTimeScore: optionalString(g.FullTimeScore),
			HalfTimeScore: optionalString(g.HalfTimeScore),
			PenaltyScore:  optionalString(g.PenaltyScore),
			Referees:      listOr(g.Referees, match.NoRefereeData),
		},
		HomeTeam: toMatchTeamDTO(in.HomeTeam),
		AwayTeam: toMatchTeamDTO(in.AwayTeam),
		ExtraInfo: extraInfoDTO{
			Competition:   toExtraCompetitionDTO(in.Extra.Competition),
			Goals:         listOr(in.Extra.Goals, match.NoGoalsYet),
			Bookings:      listOr(in.Extra.Bookings, match.NoBookingsYet),
			Substitutions: listOr(in.Extra.Substitutions, match.NoSubstitutionsYet),
		},
		Statistics: statisticsPairDTO{
			HomeTeam: toSideStatisticsDTO(in.HomeStats),
			AwayTeam: toSideStatisticsDTO(in.AwayStats),
		},
	}
}
