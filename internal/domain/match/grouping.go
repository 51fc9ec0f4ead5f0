package match

import "sort"

// Group buckets matches by country and then by competition name. Both levels keep
// first-seen order, and flag/emblem/code come from the first match of each bucket.
func Group(matches []Match) []CountryGroup {
	out := make([]CountryGroup, 0, 8)
	countryIdx := make(map[string]int, 8)
	leagueIdx := make(map[string]map[string]int, 8)

	for _, item := range matches {
		ci, ok := countryIdx[item.Country.Name]
		if !ok {
			ci = len(out)
			countryIdx[item.Country.Name] = ci
			leagueIdx[item.Country.Name] = make(map[string]int, 4)
			out = append(out, CountryGroup{
				Country: item.Country.Name,
				Flag:    item.Country.Flag,
			})
		}

		leagues := leagueIdx[item.Country.Name]
		li, ok := leagues[item.Competition.Name]
		if !ok {
			li = len(out[ci].Leagues)
			leagues[item.Competition.Name] = li
			out[ci].Leagues = append(out[ci].Leagues, LeagueGroup{
				League: item.Competition.Name,
				Emblem: item.Competition.Emblem,
				Code:   item.Competition.Code,
			})
		}

		out[ci].Leagues[li].Matches = append(out[ci].Leagues[li].Matches, item)
	}

	return out
}

// Count returns the number of matches across all buckets.
func Count(groups []CountryGroup) int {
	total := 0
	for _, country := range groups {
		for _, league := range country.Leagues {
			total += len(league.Matches)
		}
	}
	return total
}

// SortChronological orders matches by kickoff. Matches without a kickoff go
// last; ties keep provider order.
func SortChronological(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i].KickoffAt, matches[j].KickoffAt
		if a.IsZero() != b.IsZero() {
			return b.IsZero()
		}
		return a.Before(b)
	})
}
