package entity

import (
	"time"

	"github.com/google/uuid"
)

const JourneyLength = 30

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
}

type ExperienceLevel string

const (
	Beginner     ExperienceLevel = "beginner"
	Intermediate ExperienceLevel = "intermediate"
	Advanced     ExperienceLevel = "advanced"
)

type Profile struct {
	UserID          uuid.UUID       `json:"uid"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	SessionDuration int             `json:"session_duration"`
	PracticeDays    []string        `json:"practice_days"`
	ReminderTime    string          `json:"reminder_time"`
	CreatedAt       time.Time       `json:"created_at"`
}

// JourneyState is the per-user progress through the 30 day journey.
// CompletedDays is kept sorted ascending and never holds duplicates.
type JourneyState struct {
	CompletedDays       []int      `json:"completed_days"`
	TotalPosesPracticed int        `json:"total_poses_practiced"`
	TotalPracticeTime   float64    `json:"total_practice_time"`
	CurrentDay          int        `json:"current_day"`
	LastPracticeDate    *time.Time `json:"last_practice_date,omitempty"`
	StreakCount         int        `json:"streak_count"`
	JourneyStartDate    *time.Time `json:"journey_start_date,omitempty"`
}

func NewJourneyState() JourneyState {
	return JourneyState{
		CompletedDays: []int{},
		CurrentDay:    1,
	}
}

// Clone returns a deep copy, so callers can derive new states without aliasing.
func (s JourneyState) Clone() JourneyState {
	c := s
	c.CompletedDays = append(make([]int, 0, len(s.CompletedDays)+1), s.CompletedDays...)
	if s.LastPracticeDate != nil {
		d := *s.LastPracticeDate
		c.LastPracticeDate = &d
	}
	if s.JourneyStartDate != nil {
		d := *s.JourneyStartDate
		c.JourneyStartDate = &d
	}
	return c
}

type Pose struct {
	ID              uuid.UUID       `json:"id"`
	Day             int             `json:"day"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Name            string          `json:"pose_name"`
	VideoURL        string          `json:"video_url"`
	DurationSeconds int             `json:"duration_seconds"`
	Benefits        string          `json:"benefits,omitempty"`
	MusclesTargeted string          `json:"muscles_targeted,omitempty"`
	Steps           []string        `json:"steps,omitempty"`
}

type DayCompletion struct {
	ID           int       `json:"id"`
	UserID       uuid.UUID `json:"uid"`
	Day          int       `json:"day"`
	PracticeDate time.Time `json:"practice_date"`
	Poses        int       `json:"poses"`
	Minutes      float64   `json:"minutes"`
	CreatedAt    time.Time `json:"created_at"`
}
