package match

import "time"

// Side is one participating team as shown on a match card.
type Side struct {
	ID    int64
	Name  string
	Crest string
}

// CompetitionRef identifies the competition a match belongs to.
type CompetitionRef struct {
	Name   string
	Emblem string
	Code   string
}

// Area is the country (or region) a competition is played in.
type Area struct {
	Name string
	Flag string
}

// Match is a display-ready fixture built from one provider record.
type Match struct {
	ID          int64
	HomeTeam    Side
	AwayTeam    Side
	HomeGoals   *int
	AwayGoals   *int
	Competition CompetitionRef
	Country     Area
	RawStatus   string
	Status      Status
	Score       string
	KickoffAt   time.Time
	Kickoff     string
	Venue       string
	Matchday    int
	Stage       string
}

// LeagueGroup holds the matches of one competition inside a country bucket.
type LeagueGroup struct {
	League  string
	Emblem  string
	Code    string
	Matches []Match
}

// CountryGroup is the top level of a grouped schedule.
type CountryGroup struct {
	Country string
	Flag    string
	Leagues []LeagueGroup
}
