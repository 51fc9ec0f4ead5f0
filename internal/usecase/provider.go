package usecase

import "context"

// FootballDataProvider is the upstream match data API. Implementations return
// ErrNotFound for unknown resources and ErrDependencyUnavailable while the
// provider is being shed.
type FootballDataProvider interface {
	FetchMatches(ctx context.Context, filter MatchFilter) ([]ExternalMatch, error)
	FetchMatch(ctx context.Context, matchID string) (ExternalMatchDetail, error)
	FetchTeamMatches(ctx context.Context, teamID string, filter MatchFilter) ([]ExternalMatch, error)
	FetchTeam(ctx context.Context, teamID string) (ExternalTeam, error)
	FetchPerson(ctx context.Context, personID string) (ExternalPerson, error)
	FetchPersonMatches(ctx context.Context, personID string, filter MatchFilter) (ExternalPersonMatches, error)
	FetchCompetition(ctx context.Context, code string) (ExternalCompetition, error)
	FetchStandings(ctx context.Context, code string, season int) ([]ExternalStandingRow, error)
	FetchScorers(ctx context.Context, code string, season, limit int) ([]ExternalScorer, error)
	FetchCompetitionTeams(ctx context.Context, code string, season int) (ExternalCompetitionTeams, error)
	FetchCompetitionMatches(ctx context.Context, code string, season, limit int) ([]ExternalMatch, error)
}

// MatchFilter narrows match listings. Zero values are omitted from the request.
type MatchFilter struct {
	Date         string
	Season       string
	Competitions string
	Limit        int
}

type ExternalScore struct {
	Home *int
	Away *int
}

type ExternalScoreBoard struct {
	Winner    string
	Duration  string
	FullTime  ExternalScore
	HalfTime  ExternalScore
	Penalties ExternalScore
}

type ExternalArea struct {
	ID   int64
	Name string
	Code string
	Flag string
}

type ExternalCompetitionRef struct {
	ID     int64
	Name   string
	Code   string
	Type   string
	Emblem string
}

type ExternalSeason struct {
	ID              int64
	StartDate       string
	EndDate         string
	CurrentMatchday *int
}

type ExternalTeamRef struct {
	ID        int64
	Name      string
	ShortName string
	TLA       string
	Crest     string
}

type ExternalMatch struct {
	ID          int64
	UTCDate     string
	Status      string
	Matchday    *int
	Stage       string
	Group       string
	Venue       string
	Area        ExternalArea
	Competition ExternalCompetitionRef
	Season      ExternalSeason
	HomeTeam    ExternalTeamRef
	AwayTeam    ExternalTeamRef
	Score       ExternalScoreBoard
}

// ExternalMatchSide is one team of a detailed match. Statistics keys use the
// provider's snake_case names.
type ExternalMatchSide struct {
	ExternalTeamRef
	Coach      *ExternalPerson
	Formation  string
	Lineup     []any
	Bench      []any
	Statistics map[string]any
}

type ExternalMatchDetail struct {
	Match         ExternalMatch
	Home          ExternalMatchSide
	Away          ExternalMatchSide
	Goals         []any
	Bookings      []any
	Substitutions []any
	Referees      []any
}

type ExternalContract struct {
	Start string
	Until string
}

type ExternalPerson struct {
	ID          *int64
	Name        string
	FirstName   string
	LastName    string
	DateOfBirth string
	Nationality string
	Position    string
	Section     string
	ShirtNumber *int
	Contract    *ExternalContract
	CurrentTeam *ExternalTeamRef
}

type ExternalTeam struct {
	ExternalTeamRef
	Area                ExternalArea
	Venue               string
	Coach               *ExternalPerson
	Squad               []ExternalPerson
	RunningCompetitions []ExternalCompetitionRef
}

// ExternalCompetitionTeams is a competition's participant list.
type ExternalCompetitionTeams struct {
	Competition ExternalCompetitionRef
	Season      ExternalSeason
	Teams       []ExternalTeam
}

type ExternalAggregations struct {
	MatchesOnPitch int
	StartingXI     int
	MinutesPlayed  int
	Goals          int
	OwnGoals       int
	Assists        int
	YellowCards    int
	YellowRedCards int
	RedCards       int
}

type ExternalPersonMatches struct {
	Person       ExternalPerson
	Aggregations ExternalAggregations
	Matches      []ExternalMatch
}

type ExternalCompetition struct {
	ExternalCompetitionRef
	Area          ExternalArea
	CurrentSeason *ExternalSeason
	Seasons       []ExternalSeason
}

type ExternalStandingRow struct {
	Position       int
	Team           ExternalTeamRef
	PlayedGames    int
	Won            int
	Draw           int
	Lost           int
	Points         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Form           string
}

type ExternalScorer struct {
	Player        ExternalPerson
	Team          ExternalTeamRef
	PlayedMatches *int
	Goals         *int
	Assists       *int
	Penalties     *int
}
