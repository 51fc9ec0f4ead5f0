package competition

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func season(start, end int) Season {
	return Season{
		ID:        int64(start),
		StartDate: strconv.Itoa(start) + "-08-15",
		EndDate:   strconv.Itoa(end) + "-05-25",
	}
}

func TestSeasonLabelRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []Season{season(2023, 2024), season(2019, 2020), {StartDate: "2024-01-01", EndDate: "2024-12-31"}} {
		label := s.Label()
		head, _, ok := strings.Cut(label, "/")
		if !ok {
			t.Fatalf("label %q has no separator", label)
		}
		year, err := strconv.Atoi(head)
		if err != nil {
			t.Fatalf("label %q: %v", label, err)
		}
		if year != s.StartYear() {
			t.Fatalf("label %q start year %d, want %d", label, year, s.StartYear())
		}
	}

	if got := season(2024, 2025).Label(); got != "2024/2025" {
		t.Fatalf("Label = %q", got)
	}
}

func TestExtractDeduplicatesByFullIdentity(t *testing.T) {
	t.Parallel()

	pl := Competition{ID: 2021, Name: "Premier League", Code: "PL", Type: "LEAGUE", Emblem: "pl.png"}
	plOtherEmblem := pl
	plOtherEmblem.Emblem = "pl-new.png"
	cl := Competition{ID: 2001, Name: "UEFA Champions League", Code: "CL", Type: "CUP"}

	s1 := season(2023, 2024)
	s2 := season(2024, 2025)
	s2Matchday := s2
	s2Matchday.CurrentMatchday = 12

	competitions, seasons := Extract([]Appearance{
		{Competition: pl, Season: s1},
		{Competition: pl, Season: s2},
		{Competition: cl, Season: s2},
		{Competition: plOtherEmblem, Season: s2Matchday},
	})

	if len(competitions) != 3 {
		t.Fatalf("expected 3 competitions, got %d", len(competitions))
	}
	if competitions[0].Code != "PL" || competitions[1].Code != "CL" || competitions[2].Emblem != "pl-new.png" {
		t.Fatalf("unexpected competition order: %+v", competitions)
	}

	if len(seasons) != 3 {
		t.Fatalf("expected 3 seasons, got %d", len(seasons))
	}
	if seasons[0].StartYear() != 2023 || seasons[1] != s2 || seasons[2] != s2Matchday {
		t.Fatalf("seasons not in first-seen order: %+v", seasons)
	}
}

func TestResolveCurrent(t *testing.T) {
	t.Parallel()

	seasons := []Season{season(2022, 2023), season(2024, 2025), season(2023, 2024)}

	got, ok := ResolveCurrent(seasons, "2023", 2025)
	if !ok || got.StartYear() != 2023 {
		t.Fatalf("requested year: got %+v", got)
	}

	got, ok = ResolveCurrent(seasons, "", 2025)
	if !ok || got.StartYear() != 2024 {
		t.Fatalf("current year: got %+v", got)
	}

	got, ok = ResolveCurrent(seasons, "1999", 2030)
	if !ok || got.StartYear() != 2022 {
		t.Fatalf("fallback should return the first season, got %+v", got)
	}

	if _, ok := ResolveCurrent(nil, "2024", 2024); ok {
		t.Fatalf("expected no season for empty input")
	}
}

func TestAvailable(t *testing.T) {
	t.Parallel()

	seasons := []Season{season(2021, 2022), season(2023, 2024), season(2024, 2025)}
	got := Available(seasons, 2023)

	if len(got) != 2 || got[0].StartYear() != 2024 || got[1].StartYear() != 2023 {
		t.Fatalf("unexpected available seasons: %+v", got)
	}
	if seasons[0].StartYear() != 2021 {
		t.Fatalf("input must not be reordered")
	}
}

func TestSeasonYearOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kickoff time.Time
		want    int
	}{
		{kickoff: time.Date(2025, time.January, 4, 15, 0, 0, 0, time.UTC), want: 2024},
		{kickoff: time.Date(2025, time.July, 31, 15, 0, 0, 0, time.UTC), want: 2024},
		{kickoff: time.Date(2025, time.August, 1, 15, 0, 0, 0, time.UTC), want: 2025},
		{kickoff: time.Date(2025, time.December, 20, 15, 0, 0, 0, time.UTC), want: 2025},
	}
	for _, tc := range cases {
		if got := SeasonYearOf(tc.kickoff); got != tc.want {
			t.Fatalf("SeasonYearOf(%s) = %d, want %d", tc.kickoff.Format(time.DateOnly), got, tc.want)
		}
	}
}
