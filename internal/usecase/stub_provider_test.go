package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var errStubUpstream = errors.New("provider status=500 body=boom")

// stubProvider serves canned provider payloads and records every call.
type stubProvider struct {
	mu    sync.Mutex
	calls []string

	matches        []ExternalMatch
	matchesErr     error
	detail         ExternalMatchDetail
	detailErr      error
	teamMatches    []ExternalMatch
	teamMatchesErr error
	teams          map[string]ExternalTeam
	person         ExternalPerson
	personErr      error
	personMatches  ExternalPersonMatches
	lastFilter     MatchFilter
	competition    ExternalCompetition
	competitionErr error
	standings      map[int][]ExternalStandingRow
	scorers        []ExternalScorer
	scorersErr     error
	compMatches    []ExternalMatch
	compMatchesErr error
	compTeams      map[string]ExternalCompetitionTeams
}

func (s *stubProvider) record(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *stubProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *stubProvider) FetchMatches(_ context.Context, filter MatchFilter) ([]ExternalMatch, error) {
	s.record("matches:%s", filter.Date)
	return s.matches, s.matchesErr
}

func (s *stubProvider) FetchMatch(_ context.Context, matchID string) (ExternalMatchDetail, error) {
	s.record("match:%s", matchID)
	return s.detail, s.detailErr
}

func (s *stubProvider) FetchTeamMatches(_ context.Context, teamID string, filter MatchFilter) ([]ExternalMatch, error) {
	s.record("team-matches:%s", teamID)
	s.lastFilter = filter
	return s.teamMatches, s.teamMatchesErr
}

func (s *stubProvider) FetchTeam(_ context.Context, teamID string) (ExternalTeam, error) {
	s.record("team:%s", teamID)
	item, ok := s.teams[teamID]
	if !ok {
		return ExternalTeam{}, errStubUpstream
	}
	return item, nil
}

func (s *stubProvider) FetchPerson(_ context.Context, personID string) (ExternalPerson, error) {
	s.record("person:%s", personID)
	return s.person, s.personErr
}

func (s *stubProvider) FetchPersonMatches(_ context.Context, personID string, filter MatchFilter) (ExternalPersonMatches, error) {
	s.record("person-matches:%s", personID)
	s.lastFilter = filter
	return s.personMatches, s.personErr
}

func (s *stubProvider) FetchCompetition(_ context.Context, code string) (ExternalCompetition, error) {
	s.record("competition:%s", code)
	return s.competition, s.competitionErr
}

func (s *stubProvider) FetchStandings(_ context.Context, code string, season int) ([]ExternalStandingRow, error) {
	s.record("standings:%s:%d", code, season)
	rows, ok := s.standings[season]
	if !ok {
		return nil, errStubUpstream
	}
	return rows, nil
}

func (s *stubProvider) FetchScorers(_ context.Context, code string, season, limit int) ([]ExternalScorer, error) {
	s.record("scorers:%s:%d:%d", code, season, limit)
	return s.scorers, s.scorersErr
}

func (s *stubProvider) FetchCompetitionTeams(_ context.Context, code string, _ int) (ExternalCompetitionTeams, error) {
	s.record("competition-teams:%s", code)
	item, ok := s.compTeams[code]
	if !ok {
		return ExternalCompetitionTeams{}, errStubUpstream
	}
	return item, nil
}

func (s *stubProvider) FetchCompetitionMatches(_ context.Context, code string, season, limit int) ([]ExternalMatch, error) {
	s.record("competition-matches:%s:%d:%d", code, season, limit)
	return s.compMatches, s.compMatchesErr
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }
