package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchcenter/internal/domain/person"
)

func TestTeamService_GetTeamSquad_CoachFirst(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		teams: map[string]ExternalTeam{
			"57": {
				ExternalTeamRef: ExternalTeamRef{ID: 57, Name: "Arsenal FC", Crest: "arsenal.png"},
				Coach:           &ExternalPerson{ID: int64Ptr(11619), Name: "Mikel Arteta", Nationality: "Spain"},
				Squad: []ExternalPerson{
					{ID: int64Ptr(7784), Name: "Bukayo Saka", Position: "Offence", Nationality: "England"},
					{ID: int64Ptr(3174), Name: "Martin Ødegaard"},
				},
			},
		},
	}
	service := NewTeamService(provider, fixedClock(), Options{}, nil)

	got, err := service.GetTeamSquad(context.Background(), "57")
	if err != nil {
		t.Fatalf("GetTeamSquad error: %v", err)
	}
	if got.Team != "Arsenal FC" || got.Crest != "arsenal.png" || len(got.Members) != 3 {
		t.Fatalf("unexpected squad: %+v", got)
	}

	coach := got.Members[0]
	if coach.ID != nil || coach.Position != person.PositionManager || coach.Name != "Mikel Arteta" {
		t.Fatalf("coach not normalized: %+v", coach)
	}
	if coach.DateOfBirth != person.Unknown {
		t.Fatalf("missing date of birth should be Unknown, got %q", coach.DateOfBirth)
	}
	if got.Members[2].Position != person.Unknown || got.Members[2].Nationality != person.Unknown {
		t.Fatalf("player defaults missing: %+v", got.Members[2])
	}
}

func TestTeamService_GetTeamSquad_MissingCoach(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		teams: map[string]ExternalTeam{"1": {ExternalTeamRef: ExternalTeamRef{ID: 1}}},
	}
	service := NewTeamService(provider, fixedClock(), Options{}, nil)

	got, err := service.GetTeamSquad(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetTeamSquad error: %v", err)
	}
	if got.Team != "Unknown" || len(got.Members) != 1 || got.Members[0].Name != person.Unknown || !got.Members[0].IsManager() {
		t.Fatalf("unexpected squad: %+v", got)
	}
}

func TestTeamService_GetTeamSquad_Failure(t *testing.T) {
	t.Parallel()

	service := NewTeamService(&stubProvider{}, fixedClock(), Options{}, nil)

	_, err := service.GetTeamSquad(context.Background(), "404")
	if !errors.Is(err, ErrUpstreamFetch) || err.Error() != "Failed to fetch team squad" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func seasonedMatch(code string, start, end string) ExternalMatch {
	return ExternalMatch{
		Competition: ExternalCompetitionRef{ID: 1, Name: code, Code: code},
		Season:      ExternalSeason{ID: 1, StartDate: start, EndDate: end},
	}
}

func TestTeamService_GetTeamFilters(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		teamMatches: []ExternalMatch{
			seasonedMatch("PL", "2021-08-13", "2022-05-22"),
			seasonedMatch("PL", "2023-08-11", "2024-05-19"),
			seasonedMatch("CL", "2023-08-11", "2024-05-19"),
			seasonedMatch("PL", "2024-08-16", "2025-05-25"),
			seasonedMatch("PL", "2024-08-16", "2025-05-25"),
		},
	}
	service := NewTeamService(provider, fixedClock(), Options{}, nil)

	got, err := service.GetTeamFilters(context.Background(), "57", "")
	if err != nil {
		t.Fatalf("GetTeamFilters error: %v", err)
	}

	if len(got.Competitions) != 2 || got.Competitions[0].Code != "PL" || got.Competitions[1].Code != "CL" {
		t.Fatalf("unexpected competitions: %+v", got.Competitions)
	}
	if len(got.Seasons) != 3 || got.Seasons[0].StartYear() != 2024 || got.Seasons[2].StartYear() != 2021 {
		t.Fatalf("unexpected seasons: %+v", got.Seasons)
	}
	if len(got.AvailableSeasons) != 2 || got.AvailableSeasons[0].StartYear() != 2024 || got.AvailableSeasons[1].StartYear() != 2023 {
		t.Fatalf("unexpected available seasons: %+v", got.AvailableSeasons)
	}
	// 2026 is outside every season, so the first one the provider listed is picked.
	if got.CurrentSeason == nil || got.CurrentSeason.StartYear() != 2021 {
		t.Fatalf("unexpected current season: %+v", got.CurrentSeason)
	}

	got, err = service.GetTeamFilters(context.Background(), "57", "2023")
	if err != nil {
		t.Fatalf("GetTeamFilters error: %v", err)
	}
	if got.CurrentSeason.Label() != "2023/2024" {
		t.Fatalf("requested season not honoured: %s", got.CurrentSeason.Label())
	}
}

func TestTeamService_GetTeamFilters_FallsBackToProviderOrder(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{
		teamMatches: []ExternalMatch{
			seasonedMatch("PL", "2018-08-10", "2019-05-12"),
			seasonedMatch("PL", "2019-08-09", "2020-07-26"),
		},
	}
	service := NewTeamService(provider, fixedClock(), Options{}, nil)

	got, err := service.GetTeamFilters(context.Background(), "57", "")
	if err != nil {
		t.Fatalf("GetTeamFilters error: %v", err)
	}
	if got.CurrentSeason == nil || got.CurrentSeason.Label() != "2018/2019" {
		t.Fatalf("expected first listed season, got %+v", got.CurrentSeason)
	}
	if got.Seasons[0].Label() != "2019/2020" || got.Seasons[1].Label() != "2018/2019" {
		t.Fatalf("seasons should still be listed newest first: %+v", got.Seasons)
	}
}
