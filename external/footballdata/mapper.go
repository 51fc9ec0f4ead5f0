package footballdata

import (
	"strings"

	"github.com/riskibarqy/matchcenter/internal/usecase"
)

func mapArea(src areaDTO) usecase.ExternalArea {
	return usecase.ExternalArea{ID: src.ID, Name: src.Name, Code: src.Code, Flag: src.Flag}
}

func mapCompetitionRef(src competitionRefDTO) usecase.ExternalCompetitionRef {
	return usecase.ExternalCompetitionRef{
		ID:     src.ID,
		Name:   src.Name,
		Code:   src.Code,
		Type:   src.Type,
		Emblem: src.Emblem,
	}
}

func mapSeason(src seasonDTO) usecase.ExternalSeason {
	return usecase.ExternalSeason{
		ID:              src.ID,
		StartDate:       src.StartDate,
		EndDate:         src.EndDate,
		CurrentMatchday: src.CurrentMatchday,
	}
}

func mapScore(src *scoreDTO) usecase.ExternalScore {
	if src == nil {
		return usecase.ExternalScore{}
	}
	return usecase.ExternalScore{Home: src.Home, Away: src.Away}
}

func mapTeamRef(src teamRefDTO) usecase.ExternalTeamRef {
	return usecase.ExternalTeamRef{
		ID:        src.ID,
		Name:      src.Name,
		ShortName: src.ShortName,
		TLA:       src.TLA,
		Crest:     src.Crest,
	}
}

func mapMatchTeamRef(src matchTeamDTO) usecase.ExternalTeamRef {
	return usecase.ExternalTeamRef{
		ID:        src.ID,
		Name:      src.Name,
		ShortName: src.ShortName,
		TLA:       src.TLA,
		Crest:     src.Crest,
	}
}

func mapMatch(src matchDTO) usecase.ExternalMatch {
	return usecase.ExternalMatch{
		ID:          src.ID,
		UTCDate:     src.UTCDate,
		Status:      strings.ToUpper(strings.TrimSpace(src.Status)),
		Matchday:    src.Matchday,
		Stage:       src.Stage,
		Group:       src.Group,
		Venue:       src.Venue,
		Area:        mapArea(src.Area),
		Competition: mapCompetitionRef(src.Competition),
		Season:      mapSeason(src.Season),
		HomeTeam:    mapMatchTeamRef(src.HomeTeam),
		AwayTeam:    mapMatchTeamRef(src.AwayTeam),
		Score: usecase.ExternalScoreBoard{
			Winner:    src.Score.Winner,
			Duration:  src.Score.Duration,
			FullTime:  mapScore(&src.Score.FullTime),
			HalfTime:  mapScore(&src.Score.HalfTime),
			Penalties: mapScore(src.Score.Penalties),
		},
	}
}

func mapMatches(src []matchDTO) []usecase.ExternalMatch {
	out := make([]usecase.ExternalMatch, 0, len(src))
	for _, item := range src {
		out = append(out, mapMatch(item))
	}
	return out
}

func mapMatchSide(src matchTeamDTO) usecase.ExternalMatchSide {
	out := usecase.ExternalMatchSide{
		ExternalTeamRef: mapMatchTeamRef(src),
		Formation:       src.Formation,
		Lineup:          src.Lineup,
		Bench:           src.Bench,
		Statistics:      src.Statistics,
	}
	if src.Coach != nil {
		coach := mapPerson(*src.Coach)
		out.Coach = &coach
	}
	return out
}

func mapMatchDetail(src matchDTO) usecase.ExternalMatchDetail {
	return usecase.ExternalMatchDetail{
		Match:         mapMatch(src),
		Home:          mapMatchSide(src.HomeTeam),
		Away:          mapMatchSide(src.AwayTeam),
		Goals:         src.Goals,
		Bookings:      src.Bookings,
		Substitutions: src.Substitutions,
		Referees:      src.Referees,
	}
}

// mapPerson prefers the contract attached to the current team, which is where
// the persons endpoint reports it.
func mapPerson(src personDTO) usecase.ExternalPerson {
	out := usecase.ExternalPerson{
		ID:          src.ID,
		Name:        src.Name,
		FirstName:   src.FirstName,
		LastName:    src.LastName,
		DateOfBirth: src.DateOfBirth,
		Nationality: src.Nationality,
		Position:    src.Position,
		Section:     src.Section,
		ShirtNumber: src.ShirtNumber,
	}
	contract := src.Contract
	if src.CurrentTeam != nil {
		out.CurrentTeam = &usecase.ExternalTeamRef{
			ID:        src.CurrentTeam.ID,
			Name:      src.CurrentTeam.Name,
			ShortName: src.CurrentTeam.ShortName,
			TLA:       src.CurrentTeam.TLA,
			Crest:     src.CurrentTeam.Crest,
		}
		if src.CurrentTeam.Contract != nil {
			contract = src.CurrentTeam.Contract
		}
	}
	if contract != nil {
		out.Contract = &usecase.ExternalContract{Start: contract.Start, Until: contract.Until}
	}
	return out
}

func mapTeam(src teamDTO) usecase.ExternalTeam {
	out := usecase.ExternalTeam{
		ExternalTeamRef: usecase.ExternalTeamRef{
			ID:        src.ID,
			Name:      src.Name,
			ShortName: src.ShortName,
			TLA:       src.TLA,
			Crest:     src.Crest,
		},
		Area:  mapArea(src.Area),
		Venue: src.Venue,
	}
	if src.Coach != nil {
		coach := mapPerson(*src.Coach)
		out.Coach = &coach
	}
	out.Squad = make([]usecase.ExternalPerson, 0, len(src.Squad))
	for _, item := range src.Squad {
		out.Squad = append(out.Squad, mapPerson(item))
	}
	out.RunningCompetitions = make([]usecase.ExternalCompetitionRef, 0, len(src.RunningCompetitions))
	for _, item := range src.RunningCompetitions {
		out.RunningCompetitions = append(out.RunningCompetitions, mapCompetitionRef(item))
	}
	return out
}

func mapCompetition(src competitionDTO) usecase.ExternalCompetition {
	out := usecase.ExternalCompetition{
		ExternalCompetitionRef: mapCompetitionRef(src.competitionRefDTO),
		Area:                   mapArea(src.Area),
	}
	if src.CurrentSeason != nil {
		current := mapSeason(*src.CurrentSeason)
		out.CurrentSeason = &current
	}
	out.Seasons = make([]usecase.ExternalSeason, 0, len(src.Seasons))
	for _, item := range src.Seasons {
		out.Seasons = append(out.Seasons, mapSeason(item))
	}
	return out
}

// pickStandingsTable returns the overall table, or the first one when the
// provider does not label them.
func pickStandingsTable(groups []standingGroupDTO) []standingRowDTO {
	for _, group := range groups {
		if strings.EqualFold(group.Type, "TOTAL") {
			return group.Table
		}
	}
	if len(groups) > 0 {
		return groups[0].Table
	}
	return nil
}

func mapStandings(groups []standingGroupDTO) []usecase.ExternalStandingRow {
	rows := pickStandingsTable(groups)
	out := make([]usecase.ExternalStandingRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, usecase.ExternalStandingRow{
			Position:       row.Position,
			Team:           mapTeamRef(row.Team),
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

func mapScorers(src []scorerDTO) []usecase.ExternalScorer {
	out := make([]usecase.ExternalScorer, 0, len(src))
	for _, item := range src {
		out = append(out, usecase.ExternalScorer{
			Player:        mapPerson(item.Player),
			Team:          mapTeamRef(item.Team),
			PlayedMatches: item.PlayedMatches,
			Goals:         item.Goals,
			Assists:       item.Assists,
			Penalties:     item.Penalties,
		})
	}
	return out
}
