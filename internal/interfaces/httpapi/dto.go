package httpapi

import (
	"github.com/riskibarqy/matchcenter/internal/domain/competition"
	"github.com/riskibarqy/matchcenter/internal/domain/match"
	"github.com/riskibarqy/matchcenter/internal/domain/person"
	"github.com/riskibarqy/matchcenter/internal/domain/search"
	"github.com/riskibarqy/matchcenter/internal/domain/standing"
	"github.com/riskibarqy/matchcenter/internal/domain/team"
	"github.com/riskibarqy/matchcenter/internal/usecase"
)

const contractUnavailable = "Contract information not available"

type countryGroupDTO struct {
	Country string           `json:"country"`
	Flag    string           `json:"flag"`
	Leagues []leagueGroupDTO `json:"leagues"`
}

type leagueGroupDTO struct {
	League  string             `json:"league"`
	Emblem  string             `json:"emblem"`
	Code    string             `json:"code,omitempty"`
	Matches []scheduleMatchDTO `json:"matches"`
}

type scheduleMatchDTO struct {
	MatchID   int64  `json:"match_id"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeCrest string `json:"home_crest"`
	AwayCrest string `json:"away_crest"`
	Score     string `json:"score"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	Venue     string `json:"venue"`
	Matchday  any    `json:"matchday"`
}

type teamMatchDTO struct {
	MatchID         int64  `json:"match_id"`
	HomeTeam        string `json:"home_team"`
	AwayTeam        string `json:"away_team"`
	HomeCrest       string `json:"home_crest"`
	AwayCrest       string `json:"away_crest"`
	Score           string `json:"score"`
	Status          string `json:"status"`
	Date            string `json:"date"`
	CompetitionName string `json:"competition_name"`
	CompetitionLogo string `json:"competition_logo"`
	Matchday        any    `json:"matchday"`
	Stage           string `json:"stage"`
}

// matchdayValue renders a missing matchday as an empty string.
func matchdayValue(v int) any {
	if v <= 0 {
		return ""
	}
	return v
}

func toCountryGroupDTOs(groups []match.CountryGroup) []countryGroupDTO {
	out := make([]countryGroupDTO, 0, len(groups))
	for _, group := range groups {
		leagues := make([]leagueGroupDTO, 0, len(group.Leagues))
		for _, league := range group.Leagues {
			leagues = append(leagues, leagueGroupDTO{
				League:  league.League,
				Emblem:  league.Emblem,
				Code:    league.Code,
				Matches: toScheduleMatchDTOs(league.Matches),
			})
		}
		out = append(out, countryGroupDTO{Country: group.Country, Flag: group.Flag, Leagues: leagues})
	}
	return out
}

func toScheduleMatchDTOs(matches []match.Match) []scheduleMatchDTO {
	out := make([]scheduleMatchDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, scheduleMatchDTO{
			MatchID:   m.ID,
			HomeTeam:  m.HomeTeam.Name,
			AwayTeam:  m.AwayTeam.Name,
			HomeCrest: m.HomeTeam.Crest,
			AwayCrest: m.AwayTeam.Crest,
			Score:     m.Score,
			Status:    string(m.Status),
			Date:      m.Kickoff,
			Venue:     m.Venue,
			Matchday:  matchdayValue(m.Matchday),
		})
	}
	return out
}

func toTeamMatchDTOs(matches []match.Match) []teamMatchDTO {
	out := make([]teamMatchDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, teamMatchDTO{
			MatchID:         m.ID,
			HomeTeam:        m.HomeTeam.Name,
			AwayTeam:        m.AwayTeam.Name,
			HomeCrest:       m.HomeTeam.Crest,
			AwayCrest:       m.AwayTeam.Crest,
			Score:           m.Score,
			Status:          string(m.Status),
			Date:            m.Kickoff,
			CompetitionName: m.Competition.Name,
			CompetitionLogo: m.Competition.Emblem,
			Matchday:        matchdayValue(m.Matchday),
			Stage:           m.Stage,
		})
	}
	return out
}

type squadMemberDTO struct {
	ID          *int64 `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	DateOfBirth string `json:"dateOfBirth"`
	Nationality string `json:"nationality"`
}

type squadDTO struct {
	TeamID int64            `json:"team_id,omitempty"`
	Team   string           `json:"team"`
	Crest  string           `json:"crest"`
	Squad  []squadMemberDTO `json:"squad"`
}

func toSquadMemberDTO(p person.Person) squadMemberDTO {
	return squadMemberDTO{
		ID:          p.ID,
		Name:        p.Name,
		Position:    p.Position,
		DateOfBirth: p.DateOfBirth,
		Nationality: p.Nationality,
	}
}

func toSquadDTO(s team.Squad) squadDTO {
	members := make([]squadMemberDTO, 0, len(s.Members))
	for _, m := range s.Members {
		members = append(members, toSquadMemberDTO(m))
	}
	return squadDTO{TeamID: s.TeamID, Team: s.Team, Crest: s.Crest, Squad: members}
}

type contractDTO struct {
	Start   string `json:"start,omitempty"`
	Until   string `json:"until,omitempty"`
	Message string `json:"message,omitempty"`
}

type playerDTO struct {
	ID          *int64      `json:"id"`
	Name        string      `json:"name"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	DateOfBirth string      `json:"dateOfBirth"`
	Nationality string      `json:"nationality"`
	Position    string      `json:"position"`
	ShirtNumber *int        `json:"shirtNumber"`
	Contract    contractDTO `json:"contract"`
}

func toPlayerDTO(p person.Person) playerDTO {
	contract := contractDTO{Message: contractUnavailable}
	if p.Contract != nil {
		contract = contractDTO{Start: p.Contract.Start, Until: p.Contract.Until}
	}
	return playerDTO{
		ID:          p.ID,
		Name:        p.Name,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Nationality: p.Nationality,
		Position:    p.Position,
		ShirtNumber: p.ShirtNumber,
		Contract:    contract,
	}
}

type playerInfoDTO struct {
	ID          *int64 `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Nationality string `json:"nationality"`
}

type playerStatsDTO struct {
	MatchesPlayed int `json:"matchesPlayed"`
	StartingXI    int `json:"startingXI"`
	MinutesPlayed int `json:"minutesPlayed"`
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	YellowCards   int `json:"yellowCards"`
	RedCards      int `json:"redCards"`
}

type competitionBadgeDTO struct {
	Name   string `json:"name"`
	Emblem string `json:"emblem"`
}

type matchSideScoreDTO struct {
	Name  string `json:"name"`
	Crest string `json:"crest"`
	Score *int   `json:"score"`
}

type playerMatchDTO struct {
	MatchID     int64               `json:"match_id"`
	Competition competitionBadgeDTO `json:"competition"`
	HomeTeam    matchSideScoreDTO   `json:"homeTeam"`
	AwayTeam    matchSideScoreDTO   `json:"awayTeam"`
	Date        string              `json:"date"`
	Status      string              `json:"status"`
	Stage       string              `json:"stage"`
	Matchday    any                 `json:"matchday"`
}

type playerMatchesDTO struct {
	PlayerInfo playerInfoDTO    `json:"playerInfo"`
	Stats      playerStatsDTO   `json:"stats"`
	Matches    []playerMatchDTO `json:"matches"`
}

func toPlayerMatchesDTO(in usecase.PlayerMatches) playerMatchesDTO {
	matches := make([]playerMatchDTO, 0, len(in.Matches))
	for _, m := range in.Matches {
		matches = append(matches, playerMatchDTO{
			MatchID:     m.ID,
			Competition: competitionBadgeDTO{Name: m.Competition.Name, Emblem: m.Competition.Emblem},
			HomeTeam:    matchSideScoreDTO{Name: m.HomeTeam.Name, Crest: m.HomeTeam.Crest, Score: m.HomeGoals},
			AwayTeam:    matchSideScoreDTO{Name: m.AwayTeam.Name, Crest: m.AwayTeam.Crest, Score: m.AwayGoals},
			Date:        m.Kickoff,
			Status:      m.RawStatus,
			Stage:       m.Stage,
			Matchday:    matchdayValue(m.Matchday),
		})
	}
	return playerMatchesDTO{
		PlayerInfo: playerInfoDTO{
			ID:          in.Player.ID,
			Name:        in.Player.Name,
			Position:    in.Player.Position,
			Nationality: in.Player.Nationality,
		},
		Stats: playerStatsDTO{
			MatchesPlayed: in.Stats.MatchesPlayed,
			StartingXI:    in.Stats.StartingXI,
			MinutesPlayed: in.Stats.MinutesPlayed,
			Goals:         in.Stats.Goals,
			Assists:       in.Stats.Assists,
			YellowCards:   in.Stats.YellowCards,
			RedCards:      in.Stats.RedCards,
		},
		Matches: matches,
	}
}

type competitionDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code"`
	Type   string `json:"type"`
	Emblem string `json:"emblem"`
}

type seasonDTO struct {
	ID              int64  `json:"id"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Label           string `json:"label"`
	CurrentMatchday int    `json:"currentMatchday,omitempty"`
}

func toCompetitionDTO(c competition.Competition) competitionDTO {
	return competitionDTO{ID: c.ID, Name: c.Name, Code: c.Code, Type: c.Type, Emblem: c.Emblem}
}

func toSeasonDTO(s competition.Season) seasonDTO {
	return seasonDTO{
		ID:              s.ID,
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		Label:           s.Label(),
		CurrentMatchday: s.CurrentMatchday,
	}
}

func toSeasonDTOs(seasons []competition.Season) []seasonDTO {
	out := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		out = append(out, toSeasonDTO(s))
	}
	return out
}

func toSeasonDTOPtr(s *competition.Season) *seasonDTO {
	if s == nil {
		return nil
	}
	dto := toSeasonDTO(*s)
	return &dto
}

type teamFiltersDTO struct {
	Competitions     []competitionDTO `json:"competitions"`
	Seasons          []seasonDTO      `json:"seasons"`
	AvailableSeasons []seasonDTO      `json:"availableSeasons"`
	CurrentSeason    *seasonDTO       `json:"currentSeason"`
}

func toTeamFiltersDTO(in usecase.TeamFilters) teamFiltersDTO {
	comps := make([]competitionDTO, 0, len(in.Competitions))
	for _, c := range in.Competitions {
		comps = append(comps, toCompetitionDTO(c))
	}
	return teamFiltersDTO{
		Competitions:     comps,
		Seasons:          toSeasonDTOs(in.Seasons),
		AvailableSeasons: toSeasonDTOs(in.AvailableSeasons),
		CurrentSeason:    toSeasonDTOPtr(in.CurrentSeason),
	}
}

type teamRefDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

type standingRowDTO struct {
	Position       int        `json:"position"`
	Team           teamRefDTO `json:"team"`
	PlayedGames    int        `json:"playedGames"`
	Won            int        `json:"won"`
	Draw           int        `json:"draw"`
	Lost           int        `json:"lost"`
	Points         int        `json:"points"`
	GoalsFor       int        `json:"goalsFor"`
	GoalsAgainst   int        `json:"goalsAgainst"`
	GoalDifference int        `json:"goalDifference"`
	Form           string     `json:"form,omitempty"`
}

type scorerDTO struct {
	PlayerID      int64      `json:"playerId"`
	PlayerName    string     `json:"playerName"`
	Nationality   string     `json:"nationality"`
	Position      string     `json:"position"`
	Team          teamRefDTO `json:"team"`
	PlayedMatches *int       `json:"playedMatches"`
	Goals         *int       `json:"goals"`
	Assists       *int       `json:"assists"`
	Penalties     *int       `json:"penalties"`
}

type areaDTO struct {
	Name string `json:"name"`
	Flag string `json:"flag"`
}

type competitionDetailsDTO struct {
	Competition      competitionDTO     `json:"competition"`
	Area             areaDTO            `json:"area"`
	CurrentSeason    *seasonDTO         `json:"currentSeason"`
	AvailableSeasons []seasonDTO        `json:"availableSeasons"`
	Standings        []standingRowDTO   `json:"standings"`
	Scorers          []scorerDTO        `json:"scorers"`
	Matches          []scheduleMatchDTO `json:"matches"`
}

func toStandingRowDTOs(table standing.Table) []standingRowDTO {
	out := make([]standingRowDTO, 0, len(table))
	for _, row := range table {
		out = append(out, standingRowDTO{
			Position: row.Position,
			Team: teamRefDTO{
				ID:        row.TeamID,
				Name:      row.TeamName,
				ShortName: row.TeamShortName,
				TLA:       row.TeamTLA,
				Crest:     row.TeamCrest,
			},
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

func toCompetitionDetailsDTO(in usecase.CompetitionDetails) competitionDetailsDTO {
	scorers := make([]scorerDTO, 0, len(in.Scorers))
	for _, s := range in.Scorers {
		scorers = append(scorers, scorerDTO{
			PlayerID:    s.PlayerID,
			PlayerName:  s.PlayerName,
			Nationality: s.Nationality,
			Position:    s.Position,
			Team: teamRefDTO{
				ID:        s.Team.ID,
				Name:      s.Team.Name,
				ShortName: s.Team.ShortName,
				TLA:       s.Team.TLA,
				Crest:     s.Team.Crest,
			},
			PlayedMatches: s.PlayedMatches,
			Goals:         s.Goals,
			Assists:       s.Assists,
			Penalties:     s.Penalties,
		})
	}
	return competitionDetailsDTO{
		Competition:      toCompetitionDTO(in.Competition),
		Area:             areaDTO{Name: in.Area.Name, Flag: in.Area.Flag},
		CurrentSeason:    toSeasonDTOPtr(in.CurrentSeason),
		AvailableSeasons: toSeasonDTOs(in.AvailableSeasons),
		Standings:        toStandingRowDTOs(in.Standings),
		Scorers:          scorers,
		Matches:          toScheduleMatchDTOs(in.Matches),
	}
}

type originDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code,omitempty"`
	Crest string `json:"crest,omitempty"`
}

type teamHitDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ShortName   string    `json:"shortName"`
	TLA         string    `json:"tla"`
	Crest       string    `json:"crest"`
	Competition originDTO `json:"competition"`
}

type teamSearchDTO struct {
	Teams []teamHitDTO `json:"teams"`
	Total int          `json:"total"`
	Query string       `json:"query"`
}

type personHitDTO struct {
	ID          *int64    `json:"id"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	DateOfBirth string    `json:"dateOfBirth"`
	Nationality string    `json:"nationality"`
	Team        originDTO `json:"team"`
}

type playerSearchDTO struct {
	Players  []personHitDTO `json:"players"`
	Managers []personHitDTO `json:"managers"`
	Total    int            `json:"total"`
	Query    string         `json:"query"`
}

func toOriginDTO(o search.Origin) originDTO {
	return originDTO{ID: o.ID, Name: o.Name, Code: o.Code, Crest: o.Crest}
}

func toTeamSearchDTO(in search.TeamResult) teamSearchDTO {
	teams := make([]teamHitDTO, 0, len(in.Teams))
	for _, hit := range in.Teams {
		teams = append(teams, teamHitDTO{
			ID:          hit.Team.ID,
			Name:        hit.Team.Name,
			ShortName:   hit.Team.ShortName,
			TLA:         hit.Team.TLA,
			Crest:       hit.Team.Crest,
			Competition: toOriginDTO(hit.Competition),
		})
	}
	return teamSearchDTO{Teams: teams, Total: in.Total, Query: in.Query}
}

func toPersonHitDTOs(hits []search.PersonHit) []personHitDTO {
	out := make([]personHitDTO, 0, len(hits))
	for _, hit := range hits {
		out = append(out, personHitDTO{
			ID:          hit.Person.ID,
			Name:        hit.Person.Name,
			Position:    hit.Person.Position,
			DateOfBirth: hit.Person.DateOfBirth,
			Nationality: hit.Person.Nationality,
			Team:        toOriginDTO(hit.Team),
		})
	}
	return out
}

func toPlayerSearchDTO(in search.PlayerResult) playerSearchDTO {
	return playerSearchDTO{
		Players:  toPersonHitDTOs(in.Players),
		Managers: toPersonHitDTOs(in.Managers),
		Total:    in.Total,
		Query:    in.Query,
	}
}
