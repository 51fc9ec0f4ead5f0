package competition

import (
	"sort"
	"strings"
	"time"
)

// Appearance is the (competition, season) pair a single match was played in.
type Appearance struct {
	Competition Competition
	Season      Season
}

// Extract returns the distinct competitions and seasons seen across appearances.
// Two entries are the same only when every captured field matches. Both keep
// first-seen order; use SortDescending on a copy for display.
func Extract(appearances []Appearance) ([]Competition, []Season) {
	competitions := make([]Competition, 0, 4)
	seenCompetitions := make(map[Key]struct{}, 4)
	seasons := make([]Season, 0, 4)
	seenSeasons := make(map[Season]struct{}, 4)

	for _, item := range appearances {
		key := item.Competition.Key()
		if _, ok := seenCompetitions[key]; !ok {
			seenCompetitions[key] = struct{}{}
			competitions = append(competitions, item.Competition)
		}
		if _, ok := seenSeasons[item.Season]; !ok {
			seenSeasons[item.Season] = struct{}{}
			seasons = append(seasons, item.Season)
		}
	}

	return competitions, seasons
}

// SortDescending orders seasons newest first, stable for equal start years.
func SortDescending(seasons []Season) {
	sort.SliceStable(seasons, func(i, j int) bool {
		return seasons[i].StartYear() > seasons[j].StartYear()
	})
}

// ResolveCurrent picks the season to show by default:
//  1. the season whose start date begins with requestedYear, when given;
//  2. the season whose start/end years contain currentYear;
//  3. the first season in the given order.
//
// ok is false only when seasons is empty.
func ResolveCurrent(seasons []Season, requestedYear string, currentYear int) (Season, bool) {
	if len(seasons) == 0 {
		return Season{}, false
	}

	if requested := strings.TrimSpace(requestedYear); requested != "" {
		for _, s := range seasons {
			if strings.HasPrefix(s.StartDate, requested) {
				return s, true
			}
		}
	}

	for _, s := range seasons {
		if s.Contains(currentYear) {
			return s, true
		}
	}

	return seasons[0], true
}

// Available drops seasons starting before cutoffYear and returns the rest newest
// first. The input slice is left untouched.
func Available(seasons []Season, cutoffYear int) []Season {
	out := make([]Season, 0, len(seasons))
	for _, s := range seasons {
		if s.StartYear() >= cutoffYear {
			out = append(out, s)
		}
	}
	SortDescending(out)
	return out
}

// SeasonYearOf guesses the season a match belongs to from its kickoff: January to
// July fall in the season that started the previous year.
func SeasonYearOf(kickoff time.Time) int {
	if kickoff.Month() <= time.July {
		return kickoff.Year() - 1
	}
	return kickoff.Year()
}
