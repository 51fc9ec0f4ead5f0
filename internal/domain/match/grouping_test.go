package match

import (
	"testing"
	"time"
)

func fixture(id int64, country, flag, league, emblem string) Match {
	return Match{
		ID:          id,
		Country:     Area{Name: country, Flag: flag},
		Competition: CompetitionRef{Name: league, Emblem: emblem, Code: league[:2]},
	}
}

func TestGroupKeepsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	matches := []Match{
		fixture(1, "Spain", "es.svg", "La Liga", "pd.png"),
		fixture(2, "England", "en.svg", "Premier League", "pl.png"),
		fixture(3, "Spain", "other.svg", "Copa del Rey", "cdr.png"),
		fixture(4, "Spain", "es.svg", "La Liga", "other.png"),
	}

	groups := Group(matches)
	if len(groups) != 2 {
		t.Fatalf("expected 2 countries, got %d", len(groups))
	}
	if groups[0].Country != "Spain" || groups[1].Country != "England" {
		t.Fatalf("unexpected country order: %q, %q", groups[0].Country, groups[1].Country)
	}
	if groups[0].Flag != "es.svg" {
		t.Fatalf("flag should come from first match, got %q", groups[0].Flag)
	}

	spain := groups[0].Leagues
	if len(spain) != 2 || spain[0].League != "La Liga" || spain[1].League != "Copa del Rey" {
		t.Fatalf("unexpected league order: %+v", spain)
	}
	if spain[0].Emblem != "pd.png" {
		t.Fatalf("emblem should come from first match, got %q", spain[0].Emblem)
	}
	if len(spain[0].Matches) != 2 || spain[0].Matches[0].ID != 1 || spain[0].Matches[1].ID != 4 {
		t.Fatalf("unexpected matches in La Liga: %+v", spain[0].Matches)
	}
}

func TestGroupPreservesEveryMatchOnce(t *testing.T) {
	t.Parallel()

	matches := []Match{
		fixture(1, "Italy", "", "Serie A", ""),
		fixture(2, "Italy", "", "Serie A", ""),
		fixture(3, "France", "", "Ligue 1", ""),
	}

	groups := Group(matches)
	if got := Count(groups); got != len(matches) {
		t.Fatalf("Count = %d, want %d", got, len(matches))
	}

	seen := map[int64]int{}
	for _, country := range groups {
		for _, league := range country.Leagues {
			for _, m := range league.Matches {
				if m.Country.Name != country.Country || m.Competition.Name != league.League {
					t.Fatalf("match %d in wrong bucket", m.ID)
				}
				seen[m.ID]++
			}
		}
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("match %d appears %d times", id, n)
		}
	}
}

func TestGroupEmpty(t *testing.T) {
	t.Parallel()

	if groups := Group(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}

func TestSortChronological(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	matches := []Match{
		{ID: 1, KickoffAt: base.Add(48 * time.Hour)},
		{ID: 2, KickoffAt: base},
		{ID: 3, KickoffAt: base.Add(24 * time.Hour)},
	}

	SortChronological(matches)
	for i, want := range []int64{2, 3, 1} {
		if matches[i].ID != want {
			t.Fatalf("position %d: got %d want %d", i, matches[i].ID, want)
		}
	}
}

func TestSortChronological_MissingKickoffGoesLast(t *testing.T) {
	t.Parallel()

	matches := []Match{
		{ID: 3, KickoffAt: time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)},
		{ID: 0},
		{ID: 1, KickoffAt: time.Date(2025, 1, 1, 18, 0, 0, 0, time.UTC)},
		{ID: 4},
	}

	SortChronological(matches)
	for i, want := range []int64{1, 3, 0, 4} {
		if matches[i].ID != want {
			t.Fatalf("position %d: got %d want %d", i, matches[i].ID, want)
		}
	}
}
