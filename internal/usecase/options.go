package usecase

import (
	"time"
	_ "time/tzdata"
)

const (
	DefaultKickoffLayout = "02.01.2006 ob 15:04"
	DefaultTimezone      = "Europe/Madrid"
)

// Options carries the tunables shared by the read services.
type Options struct {
	TeamSearchCompetitions   []string
	PlayerSearchCompetitions []string
	TeamsPerCompetition      int
	PlayerSearchEarlyExit    int
	TeamResultLimit          int
	PlayerResultLimit        int
	ManagerResultLimit       int
	MinQueryLength           int
	SeasonCutoffYear         int
	PlayerMatchesLimit       int
	CompetitionListLimit     int
	FanoutWidth              int
	Location                 *time.Location
	KickoffLayout            string
}

func DefaultOptions() Options {
	return Options{
		TeamSearchCompetitions:   []string{"PL", "PD", "BL1", "SA", "FL1", "DED", "PPL", "ELC", "BSA", "CL"},
		PlayerSearchCompetitions: []string{"PL", "PD", "BL1", "SA", "FL1"},
		TeamsPerCompetition:      10,
		PlayerSearchEarlyExit:    50,
		TeamResultLimit:          20,
		PlayerResultLimit:        20,
		ManagerResultLimit:       10,
		MinQueryLength:           2,
		SeasonCutoffYear:         2023,
		PlayerMatchesLimit:       50,
		CompetitionListLimit:     20,
		FanoutWidth:              1,
		Location:                 loadLocation(DefaultTimezone),
		KickoffLayout:            DefaultKickoffLayout,
	}
}

// normalize fills zero values from the defaults.
func (o Options) normalize() Options {
	def := DefaultOptions()
	if len(o.TeamSearchCompetitions) == 0 {
		o.TeamSearchCompetitions = def.TeamSearchCompetitions
	}
	if len(o.PlayerSearchCompetitions) == 0 {
		o.PlayerSearchCompetitions = def.PlayerSearchCompetitions
	}
	if o.TeamsPerCompetition <= 0 {
		o.TeamsPerCompetition = def.TeamsPerCompetition
	}
	if o.PlayerSearchEarlyExit <= 0 {
		o.PlayerSearchEarlyExit = def.PlayerSearchEarlyExit
	}
	if o.TeamResultLimit <= 0 {
		o.TeamResultLimit = def.TeamResultLimit
	}
	if o.PlayerResultLimit <= 0 {
		o.PlayerResultLimit = def.PlayerResultLimit
	}
	if o.ManagerResultLimit <= 0 {
		o.ManagerResultLimit = def.ManagerResultLimit
	}
	if o.MinQueryLength <= 0 {
		o.MinQueryLength = def.MinQueryLength
	}
	if o.SeasonCutoffYear <= 0 {
		o.SeasonCutoffYear = def.SeasonCutoffYear
	}
	if o.PlayerMatchesLimit <= 0 {
		o.PlayerMatchesLimit = def.PlayerMatchesLimit
	}
	if o.CompetitionListLimit <= 0 {
		o.CompetitionListLimit = def.CompetitionListLimit
	}
	if o.FanoutWidth <= 0 {
		o.FanoutWidth = def.FanoutWidth
	}
	if o.Location == nil {
		o.Location = def.Location
	}
	if o.KickoffLayout == "" {
		o.KickoffLayout = def.KickoffLayout
	}
	return o
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// KickoffFormatter renders provider UTC timestamps in the display timezone.
type KickoffFormatter struct {
	loc    *time.Location
	layout string
}

func NewKickoffFormatter(loc *time.Location, layout string) KickoffFormatter {
	if loc == nil {
		loc = time.UTC
	}
	if layout == "" {
		layout = DefaultKickoffLayout
	}
	return KickoffFormatter{loc: loc, layout: layout}
}

// Parse reads an RFC 3339 instant. ok is false for empty or malformed input.
func (f KickoffFormatter) Parse(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.UTC(), true
}

// Format returns the display form of raw, or "" when it cannot be parsed.
func (f KickoffFormatter) Format(raw string) string {
	parsed, ok := f.Parse(raw)
	if !ok {
		return ""
	}
	return parsed.In(f.loc).Format(f.layout)
}
