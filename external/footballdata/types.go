package footballdata

type areaDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

type competitionRefDTO struct {
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
	CurrentMatchday *int   `json:"currentMatchday"`
}

type scoreDTO struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type scoreBoardDTO struct {
	Winner    string    `json:"winner"`
	Duration  string    `json:"duration"`
	FullTime  scoreDTO  `json:"fullTime"`
	HalfTime  scoreDTO  `json:"halfTime"`
	Penalties *scoreDTO `json:"penalties"`
}

type contractDTO struct {
	Start string `json:"start"`
	Until string `json:"until"`
}

type currentTeamDTO struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	ShortName string       `json:"shortName"`
	TLA       string       `json:"tla"`
	Crest     string       `json:"crest"`
	Contract  *contractDTO `json:"contract"`
}

type personDTO struct {
	ID          *int64          `json:"id"`
	Name        string          `json:"name"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	DateOfBirth string          `json:"dateOfBirth"`
	Nationality string          `json:"nationality"`
	Section     string          `json:"section"`
	Position    string          `json:"position"`
	ShirtNumber *int            `json:"shirtNumber"`
	Contract    *contractDTO    `json:"contract"`
	CurrentTeam *currentTeamDTO `json:"currentTeam"`
}

// matchTeamDTO covers both the short team reference of a listing and the full
// side of a match detail.
type matchTeamDTO struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	ShortName  string         `json:"shortName"`
	TLA        string         `json:"tla"`
	Crest      string         `json:"crest"`
	Coach      *personDTO     `json:"coach"`
	Formation  string         `json:"formation"`
	Lineup     []any          `json:"lineup"`
	Bench      []any          `json:"bench"`
	Statistics map[string]any `json:"statistics"`
}

type matchDTO struct {
	ID            int64             `json:"id"`
	UTCDate       string            `json:"utcDate"`
	Status        string            `json:"status"`
	Matchday      *int              `json:"matchday"`
	Stage         string            `json:"stage"`
	Group         string            `json:"group"`
	Venue         string            `json:"venue"`
	Area          areaDTO           `json:"area"`
	Competition   competitionRefDTO `json:"competition"`
	Season        seasonDTO         `json:"season"`
	HomeTeam      matchTeamDTO      `json:"homeTeam"`
	AwayTeam      matchTeamDTO      `json:"awayTeam"`
	Score         scoreBoardDTO     `json:"score"`
	Goals         []any             `json:"goals"`
	Bookings      []any             `json:"bookings"`
	Substitutions []any             `json:"substitutions"`
	Referees      []any             `json:"referees"`
}

type matchesEnvelope struct {
	Matches []matchDTO `json:"matches"`
}

// matchDetailEnvelope accepts the wrapped {"match": {...}} form of older API versions.
type matchDetailEnvelope struct {
	Match *matchDTO `json:"match"`
}

type teamDTO struct {
	ID                  int64               `json:"id"`
	Name                string              `json:"name"`
	ShortName           string              `json:"shortName"`
	TLA                 string              `json:"tla"`
	Crest               string              `json:"crest"`
	Venue               string              `json:"venue"`
	Area                areaDTO             `json:"area"`
	Coach               *personDTO          `json:"coach"`
	Squad               []personDTO         `json:"squad"`
	RunningCompetitions []competitionRefDTO `json:"runningCompetitions"`
}

type personMatchesEnvelope struct {
	Person       personDTO       `json:"person"`
	Aggregations aggregationsDTO `json:"aggregations"`
	Matches      []matchDTO      `json:"matches"`
}

type aggregationsDTO struct {
	MatchesOnPitch int `json:"matchesOnPitch"`
	StartingXI     int `json:"startingXI"`
	MinutesPlayed  int `json:"minutesPlayed"`
	Goals          int `json:"goals"`
	OwnGoals       int `json:"ownGoals"`
	Assists        int `json:"assists"`
	YellowCards    int `json:"yellowCards"`
	YellowRedCards int `json:"yellowRedCards"`
	RedCards       int `json:"redCards"`
}

type competitionDTO struct {
	competitionRefDTO
	Area          areaDTO     `json:"area"`
	CurrentSeason *seasonDTO  `json:"currentSeason"`
	Seasons       []seasonDTO `json:"seasons"`
}

type standingRowDTO struct {
	Position       int               `json:"position"`
	Team           teamRefDTO `json:"team"`
	PlayedGames    int               `json:"playedGames"`
	Form           string            `json:"form"`
	Won            int               `json:"won"`
	Draw           int               `json:"draw"`
	Lost           int               `json:"lost"`
	Points         int               `json:"points"`
	GoalsFor       int               `json:"goalsFor"`
	GoalsAgainst   int               `json:"goalsAgainst"`
	GoalDifference int               `json:"goalDifference"`
}

type teamRefDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

type standingGroupDTO struct {
	Stage string           `json:"stage"`
	Type  string           `json:"type"`
	Group string           `json:"group"`
	Table []standingRowDTO `json:"table"`
}

type standingsEnvelope struct {
	Standings []standingGroupDTO `json:"standings"`
}

type scorerDTO struct {
	Player        personDTO         `json:"player"`
	Team          teamRefDTO `json:"team"`
	PlayedMatches *int              `json:"playedMatches"`
	Goals         *int              `json:"goals"`
	Assists       *int              `json:"assists"`
	Penalties     *int              `json:"penalties"`
}

type scorersEnvelope struct {
	Scorers []scorerDTO `json:"scorers"`
}

type competitionTeamsEnvelope struct {
	Competition competitionRefDTO `json:"competition"`
	Season      seasonDTO         `json:"season"`
	Teams       []teamDTO         `json:"teams"`
}
