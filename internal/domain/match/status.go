package match

import (
	"strconv"
	"strings"
)

// Status is the display state of a match derived from the provider's raw status.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusLive      Status = "LIVE"
	StatusHalfTime  Status = "Half Time"
	StatusFinished  Status = "Finished"
)

// NotPlayedYet is shown when a match has no result to display.
const NotPlayedYet = "Match not played yet"

// Score is one home/away pair from the provider's score board (full time, half time, penalties).
type Score struct {
	Home *int
	Away *int
}

func (s Score) Present() bool {
	return s.Home != nil && s.Away != nil
}

// String renders "<home> - <away>", or "" when either side is missing.
func (s Score) String() string {
	if !s.Present() {
		return ""
	}
	return strconv.Itoa(*s.Home) + " - " + strconv.Itoa(*s.Away)
}

// DeriveStatus maps a raw provider status onto a display status. First rule wins:
// PAUSED is half time, LIVE/IN_PLAY is live, FINISHED needs a full-time score,
// anything else is scheduled. Display labels are accepted as input so that
// re-deriving an already derived status is a no-op.
func DeriveStatus(raw string, hasFullTime bool) Status {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PAUSED", "HALF TIME":
		return StatusHalfTime
	case "LIVE", "IN_PLAY":
		return StatusLive
	case "FINISHED":
		if hasFullTime {
			return StatusFinished
		}
	}
	return StatusScheduled
}

// DeriveScore picks the score text for a display status.
//
//	Finished  -> full-time score
//	Half Time -> half-time score, else "Half Time"
//	LIVE      -> full-time score, else ""
//	Scheduled -> formatted kickoff
func DeriveScore(status Status, fullTime, halfTime Score, kickoff string) string {
	switch status {
	case StatusFinished:
		return fullTime.String()
	case StatusHalfTime:
		if halfTime.Present() {
			return halfTime.String()
		}
		return string(StatusHalfTime)
	case StatusLive:
		return fullTime.String()
	case StatusScheduled:
		return kickoff
	default:
		return NotPlayedYet
	}
}

// ResultScore is the score shown in team and player histories: the full-time
// result when there is one.
func ResultScore(fullTime Score) string {
	if fullTime.Present() {
		return fullTime.String()
	}
	return NotPlayedYet
}
