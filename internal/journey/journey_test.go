package journey_test

import (
	"testing"
	"time"

	"github.com/limbo/yogajourney/internal/journey"
	"github.com/limbo/yogajourney/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func stateWith(days ...int) entity.JourneyState {
	s := entity.NewJourneyState()
	s.CompletedDays = days
	s.CurrentDay = journey.NextCurrentDay(s)
	return s
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestDayStatusOf(t *testing.T) {
	testCases := []struct {
		Desc   string
		State  entity.JourneyState
		Day    int
		Status journey.DayStatus
	}{
		{Desc: "first day of empty journey", State: stateWith(), Day: 1, Status: journey.Available},
		{Desc: "second day of empty journey", State: stateWith(), Day: 2, Status: journey.Locked},
		{Desc: "first day done", State: stateWith(1), Day: 1, Status: journey.Completed},
		{Desc: "completed day", State: stateWith(1, 2), Day: 2, Status: journey.Completed},
		{Desc: "day after last completed", State: stateWith(1, 2), Day: 3, Status: journey.Available},
		{Desc: "two days ahead", State: stateWith(1, 2), Day: 4, Status: journey.Locked},
		{Desc: "zero day", State: stateWith(1), Day: 0, Status: journey.Locked},
		{Desc: "day 31 after full journey", State: stateWith(seq(30)...), Day: 31, Status: journey.Available},
		{Desc: "day 31 of partial journey", State: stateWith(1, 2), Day: 31, Status: journey.Locked},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Status, journey.DayStatusOf(tc.State, tc.Day))
		})
	}
}

func TestFirstDayNeverLocked(t *testing.T) {
	for _, s := range []entity.JourneyState{stateWith(), stateWith(1), stateWith(2, 3), stateWith(seq(30)...)} {
		assert.NotEqual(t, journey.Locked, journey.DayStatusOf(s, 1))
	}
}

func TestAvailabilityFollowsPreviousDay(t *testing.T) {
	s := stateWith(1, 2, 3, 7)
	for d := 2; d <= 30; d++ {
		prevDone := contains(s.CompletedDays, d-1)
		done := contains(s.CompletedDays, d)
		assert.Equal(t, prevDone && !done, journey.DayStatusOf(s, d) == journey.Available, "day %d", d)
	}
}

func TestNextCurrentDay(t *testing.T) {
	assert.Equal(t, 1, journey.NextCurrentDay(stateWith()))
	assert.Equal(t, 3, journey.NextCurrentDay(stateWith(2, 1)))
	assert.Equal(t, 31, journey.NextCurrentDay(stateWith(seq(30)...)))
}

func TestIsJourneyComplete(t *testing.T) {
	assert.False(t, journey.IsJourneyComplete(stateWith()))
	assert.False(t, journey.IsJourneyComplete(stateWith(seq(29)...)))
	assert.True(t, journey.IsJourneyComplete(stateWith(seq(30)...)))
}

func TestTiles(t *testing.T) {
	tiles := journey.Tiles(stateWith(1, 2))
	require.Len(t, tiles, entity.JourneyLength)
	assert.Equal(t, journey.DayTile{Day: 1, Status: journey.Completed}, tiles[0])
	assert.Equal(t, journey.DayTile{Day: 3, Status: journey.Available}, tiles[2])
	assert.Equal(t, journey.DayTile{Day: 30, Status: journey.Locked}, tiles[29])
}

func TestCompleteDayFromEmpty(t *testing.T) {
	s := entity.NewJourneyState()
	next, changed := journey.CompleteDay(s, 1, 3, 6, now)
	require.True(t, changed)
	assert.Equal(t, []int{1}, next.CompletedDays)
	assert.Equal(t, 3, next.TotalPosesPracticed)
	assert.Equal(t, 6.0, next.TotalPracticeTime)
	assert.Equal(t, 2, next.CurrentDay)
	assert.Equal(t, 1, next.StreakCount)
	assert.Equal(t, date(2025, time.March, 10), next.LastPracticeDate)
	assert.Equal(t, date(2025, time.March, 10), next.JourneyStartDate)
	// input untouched
	assert.Empty(t, s.CompletedDays)
	assert.Nil(t, s.LastPracticeDate)
}

func TestCompleteDayIsIdempotent(t *testing.T) {
	once, _ := journey.CompleteDay(entity.NewJourneyState(), 1, 3, 6, now)
	twice, changed := journey.CompleteDay(once, 1, 3, 6, now.Add(48*time.Hour))
	assert.False(t, changed)
	assert.Equal(t, once, twice)
}

func TestCompleteDayAccumulates(t *testing.T) {
	s := stateWith(1, 2)
	s.TotalPosesPracticed = 7
	s.TotalPracticeTime = 12.5
	next, changed := journey.CompleteDay(s, 3, 4, 8.25, now)
	require.True(t, changed)
	assert.Equal(t, []int{1, 2, 3}, next.CompletedDays)
	assert.Equal(t, 11, next.TotalPosesPracticed)
	assert.Equal(t, 20.75, next.TotalPracticeTime)
	assert.Equal(t, 4, next.CurrentDay)
	assert.Equal(t, []int{1, 2}, s.CompletedDays)
}

func TestStreak(t *testing.T) {
	testCases := []struct {
		Desc   string
		Last   *time.Time
		Streak int
		Want   int
	}{
		{Desc: "first practice", Last: nil, Streak: 0, Want: 1},
		{Desc: "next calendar day", Last: date(2025, time.March, 9), Streak: 4, Want: 5},
		{Desc: "same day", Last: date(2025, time.March, 10), Streak: 4, Want: 4},
		{Desc: "two day gap", Last: date(2025, time.March, 8), Streak: 4, Want: 1},
		{Desc: "long gap", Last: date(2024, time.December, 1), Streak: 20, Want: 1},
		{Desc: "future date", Last: date(2025, time.March, 11), Streak: 2, Want: 2},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			s := stateWith(1)
			s.StreakCount = tc.Streak
			s.LastPracticeDate = tc.Last
			next, changed := journey.CompleteDay(s, 2, 1, 1, now)
			require.True(t, changed)
			assert.Equal(t, tc.Want, next.StreakCount)
		})
	}
}

func TestTodayUsesReferenceLocation(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	local := time.Date(2025, time.March, 9, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	assert.Equal(t, *date(2025, time.March, 10), journey.Today(local))
}

func TestHasCompletedToday(t *testing.T) {
	s := stateWith(1)
	assert.False(t, journey.HasCompletedToday(s, now))
	s.LastPracticeDate = date(2025, time.March, 10)
	assert.True(t, journey.HasCompletedToday(s, now))
	assert.False(t, journey.HasCompletedToday(s, now.Add(24*time.Hour)))
}

func seq(n int) []int {
	days := make([]int, n)
	for i := range days {
		days[i] = i + 1
	}
	return days
}

func contains(days []int, d int) bool {
	for _, v := range days {
		if v == d {
			return true
		}
	}
	return false
}
