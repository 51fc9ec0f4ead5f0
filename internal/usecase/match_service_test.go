package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/riskibarqy/matchcenter/internal/domain/match"
)

func scheduleFixture(id int64, country, league, status, utc string, ft, ht ExternalScore) ExternalMatch {
	return ExternalMatch{
		ID:          id,
		UTCDate:     utc,
		Status:      status,
		Area:        ExternalArea{Name: country, Flag: strings.ToLower(country) + ".svg"},
		Competition: ExternalCompetitionRef{Name: league, Code: strings.ToUpper(league[:2]), Emblem: league + ".png"},
		HomeTeam:    ExternalTeamRef{ID: id * 10, Name: "Home", Crest: "home.png"},
		AwayTeam:    ExternalTeamRef{ID: id*10 + 1, Name: "Away"},
		Score:       ExternalScoreBoard{FullTime: ft, HalfTime: ht},
	}
}

func TestMatchService_ListMatches_GroupsAndDerivesScores(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		matches: []ExternalMatch{
			scheduleFixture(1, "Spain", "La Liga", "FINISHED", "2025-03-01T20:00:00Z",
				ExternalScore{Home: intPtr(2), Away: intPtr(1)}, ExternalScore{Home: intPtr(1), Away: intPtr(1)}),
			scheduleFixture(2, "England", "Premier League", "TIMED", "2025-03-01T15:00:00Z", ExternalScore{}, ExternalScore{}),
			scheduleFixture(3, "Spain", "La Liga", "PAUSED", "2025-03-01T18:00:00Z",
				ExternalScore{Home: intPtr(0), Away: intPtr(0)}, ExternalScore{Home: intPtr(0), Away: intPtr(0)}),
			{ID: 4, Status: "IN_PLAY"},
		},
	}
	service := NewMatchService(provider, Options{}, nil)

	got, err := service.ListMatches(context.Background(), "2025-03-01")
	if err != nil {
		t.Fatalf("ListMatches error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 countries, got %d", len(got))
	}
	if got[0].Country != "Spain" || got[1].Country != "England" || got[2].Country != unknownCountry {
		t.Fatalf("unexpected countries: %q %q %q", got[0].Country, got[1].Country, got[2].Country)
	}
	if match.Count(got) != len(provider.matches) {
		t.Fatalf("grouping lost matches: got=%d want=%d", match.Count(got), len(provider.matches))
	}

	laLiga := got[0].Leagues[0].Matches
	if laLiga[0].Status != match.StatusFinished || laLiga[0].Score != "2 - 1" {
		t.Fatalf("unexpected finished match: %+v", laLiga[0])
	}
	if laLiga[0].Kickoff != "01.03.2025 ob 21:00" {
		t.Fatalf("kickoff not rendered in Madrid time: %q", laLiga[0].Kickoff)
	}
	if laLiga[1].Status != match.StatusHalfTime || laLiga[1].Score != "0 - 0" {
		t.Fatalf("unexpected half-time match: %+v", laLiga[1])
	}

	scheduled := got[1].Leagues[0].Matches[0]
	if scheduled.Status != match.StatusScheduled || scheduled.Score != "01.03.2025 ob 16:00" {
		t.Fatalf("scheduled score should be kickoff, got %+v", scheduled)
	}

	unknown := got[2].Leagues[0]
	if unknown.League != unknownLeague || unknown.Matches[0].Status != match.StatusLive || unknown.Matches[0].Score != "" {
		t.Fatalf("unexpected defaulted match: %+v", unknown)
	}
	if unknown.Matches[0].HomeTeam.Name != "Unknown" {
		t.Fatalf("missing team name should default to Unknown, got %q", unknown.Matches[0].HomeTeam.Name)
	}
}

func TestMatchService_ListMatches_UpstreamFailureHidesCause(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{matchesErr: errStubUpstream}
	service := NewMatchService(provider, Options{}, nil)

	_, err := service.ListMatches(context.Background(), "")
	if !errors.Is(err, ErrUpstreamFetch) {
		t.Fatalf("expected ErrUpstreamFetch, got %v", err)
	}
	if err.Error() != "Failed to fetch matches" {
		t.Fatalf("unexpected public message: %q", err.Error())
	}
	if !errors.Is(err, errStubUpstream) {
		t.Fatalf("cause should stay reachable for logging")
	}
}

func TestMatchService_ListTeamMatches(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		teamMatches: []ExternalMatch{
			scheduleFixture(2, "England", "Premier League", "SCHEDULED", "2025-04-10T19:00:00Z", ExternalScore{}, ExternalScore{}),
			scheduleFixture(1, "England", "Premier League", "FINISHED", "2025-04-01T19:00:00Z",
				ExternalScore{Home: intPtr(3), Away: intPtr(0)}, ExternalScore{}),
		},
	}
	provider.teamMatches[0].Matchday = intPtr(31)
	provider.teamMatches[0].Stage = "REGULAR_SEASON"
	service := NewMatchService(provider, Options{}, nil)

	got, err := service.ListTeamMatches(context.Background(), " 57 ", "2024", "PL")
	if err != nil {
		t.Fatalf("ListTeamMatches error: %v", err)
	}
	if provider.lastFilter.Season != "2024" || provider.lastFilter.Competitions != "PL" {
		t.Fatalf("filters not forwarded: %+v", provider.lastFilter)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("matches not in kickoff order: %+v", got)
	}
	if got[0].Score != "3 - 0" || got[1].Score != match.NotPlayedYet {
		t.Fatalf("unexpected scores: %q %q", got[0].Score, got[1].Score)
	}
	if got[1].Matchday != 31 || got[1].Stage != "REGULAR_SEASON" || got[1].Competition.Code != "PR" {
		t.Fatalf("competition annotations missing: %+v", got[1])
	}
}

func TestMatchService_ListTeamMatches_Validation(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{}
	service := NewMatchService(provider, Options{}, nil)

	if _, err := service.ListTeamMatches(context.Background(), " ", "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if provider.callCount() != 0 {
		t.Fatalf("no provider call expected, got %v", provider.calls)
	}
}

func TestOperationError_KindFollowsCause(t *testing.T) {
	t.Parallel()

	notFound := newOperationError("op", "Failed", fmt.Errorf("%w: team=1", ErrNotFound))
	if !errors.Is(notFound, ErrNotFound) || errors.Is(notFound, ErrUpstreamFetch) {
		t.Fatalf("not found cause should map to ErrNotFound only: %v", notFound)
	}

	shed := newOperationError("op", "Failed", fmt.Errorf("%w: circuit open", ErrDependencyUnavailable))
	if !errors.Is(shed, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable")
	}

	var opErr *OperationError
	if !errors.As(shed, &opErr) || opErr.Op != "op" || opErr.Cause() == nil {
		t.Fatalf("unexpected operation error: %+v", opErr)
	}
}
