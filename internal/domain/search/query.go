package search

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Relevance tiers, lower ranks first.
const (
	TierExact = iota
	TierPrefix
	TierContains
	TierNone
)

// Fold lowercases s and strips diacritics so "Atlético" and "atletico" compare equal.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// Query is a trimmed search term together with its folded form.
type Query struct {
	raw    string
	folded string
}

func NewQuery(raw string) Query {
	trimmed := strings.TrimSpace(raw)
	return Query{raw: trimmed, folded: Fold(trimmed)}
}

// Raw returns the trimmed query as the caller typed it.
func (q Query) Raw() string { return q.raw }

// Len counts runes of the trimmed query.
func (q Query) Len() int { return len([]rune(q.raw)) }

// Matches reports whether any field contains the query or starts with it.
func (q Query) Matches(fields ...string) bool {
	if q.folded == "" {
		return false
	}
	for _, field := range fields {
		f := Fold(field)
		if f == "" {
			continue
		}
		if strings.Contains(f, q.folded) || strings.HasPrefix(f, q.folded) {
			return true
		}
	}
	return false
}

// Tier scores fields against the query: exact beats prefix beats contains.
func (q Query) Tier(fields ...string) int {
	best := TierNone
	for _, field := range fields {
		f := Fold(field)
		if f == "" || q.folded == "" {
			continue
		}
		switch {
		case f == q.folded:
			return TierExact
		case strings.HasPrefix(f, q.folded):
			best = min(best, TierPrefix)
		case strings.Contains(f, q.folded):
			best = min(best, TierContains)
		}
	}
	return best
}

// Rank orders items by tier, keeping input order inside a tier.
func Rank[T any](items []T, q Query, fields func(T) []string) {
	tiers := make([]int, len(items))
	order := make([]int, len(items))
	for i, item := range items {
		tiers[i] = q.Tier(fields(item)...)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return tiers[order[a]] < tiers[order[b]]
	})

	ranked := make([]T, len(items))
	for i, idx := range order {
		ranked[i] = items[idx]
	}
	copy(items, ranked)
}

// Dedup keeps the first item for each key.
func Dedup[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Truncate returns at most limit items. A non-positive limit keeps everything.
func Truncate[T any](items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return items[:limit]
}
