package match

import (
	"github.com/riskibarqy/matchcenter/internal/domain/competition"
	"github.com/riskibarqy/matchcenter/internal/domain/team"
)

// Placeholders shown instead of missing statistics sections.
const (
	NoVenueInfo        = "No venue info"
	NoDurationInfo     = "No duration info"
	NoRefereeData      = "No referee data"
	NoGoalsYet         = "No goals yet"
	NoBookingsYet      = "No bookings yet"
	NoSubstitutionsYet = "No substitutions yet"
	NoData             = "No data"
)

// StatValue is a single provider counter. A missing counter carries NoData.
type StatValue struct {
	Value   any
	missing bool
}

// StatOf wraps a raw counter, substituting NoData when it is absent.
func StatOf(raw any) StatValue {
	if raw == nil {
		return StatValue{Value: NoData, missing: true}
	}
	return StatValue{Value: raw}
}

// Present reports whether the provider supplied the counter.
func (v StatValue) Present() bool {
	return !v.missing && v.Value != nil
}

// SideStatistics are the per-team counters of a match.
type SideStatistics struct {
	CornerKicks    StatValue
	FreeKicks      StatValue
	GoalKicks      StatValue
	Offsides       StatValue
	Fouls          StatValue
	BallPossession StatValue
	Saves          StatValue
	ThrowIns       StatValue
	Shots          StatValue
	ShotsOnGoal    StatValue
	ShotsOffGoal   StatValue
	YellowCards    StatValue
	YellowRedCards StatValue
	RedCards       StatValue
	Goals          int
}

// GeneralInfo is the header block of a match statistics page. Empty score
// strings mean the score is not available.
type GeneralInfo struct {
	MatchID       int64
	Date          string
	Status        string
	Venue         string
	Duration      string
	Competition   string
	FullTimeScore string
	HalfTimeScore string
	PenaltyScore  string
	Referees      []any
}

// ExtraInfo carries the event lists passed through from the provider.
type ExtraInfo struct {
	Competition   *competition.Competition
	Goals         []any
	Bookings      []any
	Substitutions []any
}

// Statistics is the enriched view of a single match.
type Statistics struct {
	General   GeneralInfo
	HomeTeam  team.Team
	AwayTeam  team.Team
	Extra     ExtraInfo
	HomeStats SideStatistics
	AwayStats SideStatistics
}
