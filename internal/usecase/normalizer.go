package usecase

import (
	"strings"

	"github.com/riskibarqy/matchcenter/internal/domain/competition"
	"github.com/riskibarqy/matchcenter/internal/domain/person"
	"github.com/riskibarqy/matchcenter/internal/domain/team"
)

// NormalizeTeam builds a team sheet with every optional field defaulted. League
// rank starts unknown and is filled in by the statistics enricher.
func NormalizeTeam(raw ExternalMatchSide) team.Team {
	coach := team.Coach{Name: team.Unknown, Nationality: team.Unknown}
	if raw.Coach != nil {
		coach.Name = orDefault(raw.Coach.Name, team.Unknown)
		coach.Nationality = orDefault(raw.Coach.Nationality, team.Unknown)
	}

	lineup := raw.Lineup
	if lineup == nil {
		lineup = []any{}
	}
	bench := raw.Bench
	if bench == nil {
		bench = []any{}
	}

	return team.Team{
		ID:         raw.ID,
		Name:       orDefault(raw.Name, team.Unknown),
		ShortName:  strings.TrimSpace(raw.ShortName),
		TLA:        strings.TrimSpace(raw.TLA),
		Crest:      strings.TrimSpace(raw.Crest),
		Coach:      coach,
		LeagueRank: team.Rank{},
		Formation:  orDefault(raw.Formation, team.Unknown),
		Lineup:     lineup,
		Bench:      bench,
	}
}

// NormalizePerson builds a player or coach record. Coaches lose their identifier
// and always play as Manager.
func NormalizePerson(raw ExternalPerson, role person.Role) person.Person {
	out := person.Person{
		ID:          raw.ID,
		Name:        orDefault(raw.Name, person.Unknown),
		FirstName:   strings.TrimSpace(raw.FirstName),
		LastName:    strings.TrimSpace(raw.LastName),
		Position:    orDefault(raw.Position, orDefault(raw.Section, person.Unknown)),
		DateOfBirth: orDefault(raw.DateOfBirth, person.Unknown),
		Nationality: orDefault(raw.Nationality, person.Unknown),
		ShirtNumber: raw.ShirtNumber,
	}
	if raw.Contract != nil {
		out.Contract = &person.Contract{Start: raw.Contract.Start, Until: raw.Contract.Until}
	}

	if role == person.RoleCoach {
		out.ID = nil
		out.Position = person.PositionManager
		out.ShirtNumber = nil
	}
	return out
}

// NormalizeCoach treats a missing coach as an unknown manager.
func NormalizeCoach(raw *ExternalPerson) person.Person {
	if raw == nil {
		return NormalizePerson(ExternalPerson{}, person.RoleCoach)
	}
	return NormalizePerson(*raw, person.RoleCoach)
}

func normalizeCompetition(raw ExternalCompetitionRef) competition.Competition {
	return competition.Competition{
		ID:     raw.ID,
		Name:   raw.Name,
		Code:   raw.Code,
		Type:   raw.Type,
		Emblem: raw.Emblem,
	}
}

func normalizeSeason(raw ExternalSeason) competition.Season {
	out := competition.Season{
		ID:        raw.ID,
		StartDate: raw.StartDate,
		EndDate:   raw.EndDate,
	}
	if raw.CurrentMatchday != nil {
		out.CurrentMatchday = *raw.CurrentMatchday
	}
	return out
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
