// Package journey holds the day progression rules of the 30 day journey.
// Everything here is pure: no IO, no clocks read implicitly.
package journey

import (
	"slices"
	"time"

	"github.com/limbo/yogajourney/pkg/entity"
)

type DayStatus string

const (
	Locked    DayStatus = "locked"
	Available DayStatus = "available"
	Completed DayStatus = "completed"
)

type DayTile struct {
	Day    int       `json:"day"`
	Status DayStatus `json:"status"`
}

// DayStatusOf classifies any integer day. Days outside 1..30 follow the same
// formula, so they come out locked unless the previous day happens to be done.
func DayStatusOf(state entity.JourneyState, day int) DayStatus {
	if isCompleted(state, day) {
		return Completed
	}
	if day == 1 || isCompleted(state, day-1) {
		return Available
	}
	return Locked
}

// NextCurrentDay returns max(completed)+1, or 1 for an empty journey.
// A value above 30 means the journey is finished.
func NextCurrentDay(state entity.JourneyState) int {
	if len(state.CompletedDays) == 0 {
		return 1
	}
	return slices.Max(state.CompletedDays) + 1
}

func IsJourneyComplete(state entity.JourneyState) bool {
	return len(state.CompletedDays) == entity.JourneyLength
}

func Tiles(state entity.JourneyState) []DayTile {
	tiles := make([]DayTile, 0, entity.JourneyLength)
	for day := 1; day <= entity.JourneyLength; day++ {
		tiles = append(tiles, DayTile{Day: day, Status: DayStatusOf(state, day)})
	}
	return tiles
}

func HasCompletedToday(state entity.JourneyState, now time.Time) bool {
	if state.LastPracticeDate == nil {
		return false
	}
	return daysBetween(*state.LastPracticeDate, Today(now)) == 0
}

func isCompleted(state entity.JourneyState, day int) bool {
	return slices.Contains(state.CompletedDays, day)
}
