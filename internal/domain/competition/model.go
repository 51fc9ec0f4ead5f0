package competition

import (
	"fmt"
	"strconv"
	"strings"
)

// Season is one edition of a competition. Its label is always derived from the dates.
type Season struct {
	ID              int64
	StartDate       string
	EndDate         string
	CurrentMatchday int
}

// StartYear is the year prefix of StartDate, or 0 when the date is malformed.
func (s Season) StartYear() int {
	return yearOf(s.StartDate)
}

func (s Season) EndYear() int {
	return yearOf(s.EndDate)
}

// Label renders "<startYear>/<endYear>".
func (s Season) Label() string {
	return fmt.Sprintf("%d/%d", s.StartYear(), s.EndYear())
}

// Contains reports whether year falls inside [StartYear, EndYear].
func (s Season) Contains(year int) bool {
	start, end := s.StartYear(), s.EndYear()
	if start == 0 || end == 0 {
		return false
	}
	return year >= start && year <= end
}

// Competition is a league or cup as referenced by matches and standings.
type Competition struct {
	ID      int64
	Name    string
	Code    string
	Type    string
	Emblem  string
	Seasons []Season
}

// Key is the comparable identity of a competition, every captured field except seasons.
type Key struct {
	ID     int64
	Name   string
	Code   string
	Type   string
	Emblem string
}

func (c Competition) Key() Key {
	return Key{ID: c.ID, Name: c.Name, Code: c.Code, Type: c.Type, Emblem: c.Emblem}
}

func yearOf(date string) int {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year <= 0 {
		return 0
	}
	return year
}
