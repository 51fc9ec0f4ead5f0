package team

import (
	"strconv"

	"github.com/riskibarqy/matchcenter/internal/domain/person"
)

// Unknown is the placeholder for missing names and formations.
const Unknown = "Unknown"

// Coach is the manager attached to a team sheet.
type Coach struct {
	Name        string
	Nationality string
}

// Rank is a league position that may be unknown.
type Rank struct {
	Position int
	Known    bool
}

func RankOf(position int) Rank {
	if position <= 0 {
		return Rank{}
	}
	return Rank{Position: position, Known: true}
}

func (r Rank) String() string {
	if !r.Known {
		return Unknown
	}
	return strconv.Itoa(r.Position)
}

// Team is a club as shown in match statistics, squads and search results.
// Lineup and Bench are passed through from the provider untouched.
type Team struct {
	ID         int64
	Name       string
	ShortName  string
	TLA        string
	Crest      string
	Coach      Coach
	LeagueRank Rank
	Formation  string
	Lineup     []any
	Bench      []any
}

// HasID reports whether the provider gave the team an identifier.
func (t Team) HasID() bool {
	return t.ID > 0
}

// Squad is a team's roster with the coach listed first.
type Squad struct {
	TeamID  int64
	Team    string
	Crest   string
	Members []person.Person
}
