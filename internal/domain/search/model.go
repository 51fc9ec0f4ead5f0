package search

import (
	"github.com/riskibarqy/matchcenter/internal/domain/person"
	"github.com/riskibarqy/matchcenter/internal/domain/team"
)

// Origin is the competition or team a hit was found under.
type Origin struct {
	ID    int64
	Name  string
	Code  string
	Crest string
}

type TeamHit struct {
	Team        team.Team
	Competition Origin
}

// Names are the fields a team is filtered on.
func (h TeamHit) Names() []string {
	return []string{h.Team.Name, h.Team.ShortName, h.Team.TLA}
}

// DisplayNames are the fields a team is ranked on.
func (h TeamHit) DisplayNames() []string {
	return []string{h.Team.Name, h.Team.ShortName}
}

type PersonHit struct {
	Person person.Person
	Team   Origin
}

// PersonKey identifies a person across squads. Coaches have no id, so they are
// keyed by name within their team.
type PersonKey struct {
	ID     int64
	Name   string
	TeamID int64
}

func (h PersonHit) Key() PersonKey {
	if h.Person.ID != nil {
		return PersonKey{ID: *h.Person.ID}
	}
	return PersonKey{Name: h.Person.Name, TeamID: h.Team.ID}
}

type TeamResult struct {
	Teams []TeamHit
	Total int
	Query string
}

type PlayerResult struct {
	Players  []PersonHit
	Managers []PersonHit
	Total    int
	Query    string
}
