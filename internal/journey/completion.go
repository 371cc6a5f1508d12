package journey

import (
	"slices"
	"time"

	"github.com/limbo/yogajourney/pkg/entity"
)

// ReferenceLocation is the single timezone every "today" is computed in.
// Streaks must not depend on where the user happens to be.
var ReferenceLocation = time.UTC

// Today truncates now to a civil date in ReferenceLocation.
func Today(now time.Time) time.Time {
	y, m, d := now.In(ReferenceLocation).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ReferenceLocation)
}

// CompleteDay marks day as completed and folds the session stats into state.
// An already completed day returns the state untouched and changed == false.
// The input state is never mutated.
func CompleteDay(state entity.JourneyState, day, poses int, minutes float64, now time.Time) (entity.JourneyState, bool) {
	if slices.Contains(state.CompletedDays, day) {
		return state, false
	}
	today := Today(now)
	next := state.Clone()

	next.CompletedDays = append(next.CompletedDays, day)
	slices.Sort(next.CompletedDays)
	next.TotalPosesPracticed += poses
	next.TotalPracticeTime += minutes
	next.StreakCount = NextStreak(state.StreakCount, state.LastPracticeDate, today)
	next.LastPracticeDate = &today
	if next.JourneyStartDate == nil {
		start := today
		next.JourneyStartDate = &start
	}
	next.CurrentDay = NextCurrentDay(next)
	return next, true
}

// NextStreak applies the calendar gap rule: same day keeps the streak,
// the following day extends it, anything longer starts over at 1.
// A last date in the future (clock skew) counts as the same day.
func NextStreak(streak int, last *time.Time, today time.Time) int {
	if last == nil {
		return 1
	}
	switch gap := daysBetween(*last, today); {
	case gap <= 0:
		return streak
	case gap == 1:
		return streak + 1
	default:
		return 1
	}
}

func daysBetween(from, to time.Time) int {
	a, b := Today(from), Today(to)
	return int(b.Sub(a).Hours()) / 24
}
