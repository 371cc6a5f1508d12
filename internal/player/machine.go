// Package player drives a practice session pose by pose: a countdown per
// pose, a fixed cooldown after it, then the next pose or the end of the day.
package player

import (
	"errors"

	"github.com/limbo/yogajourney/pkg/entity"
)

type State string

const (
	Idle      State = "idle"
	Playing   State = "playing"
	Paused    State = "paused"
	Ended     State = "ended"
	Cooldown  State = "cooldown"
	Completed State = "completed"
)

const (
	DefaultPoseSeconds = 180
	CooldownSeconds    = 10
)

// Event reports what a transition produced. Finished is returned exactly
// once per run, on the transition into Completed.
type Event int

const (
	None Event = iota
	Advanced
	Finished
)

var ErrNoPoses = errors.New("practice session needs at least one pose")

type Snapshot struct {
	Day        int         `json:"day"`
	State      State       `json:"state"`
	PoseIndex  int         `json:"pose_index"`
	TotalPoses int         `json:"total_poses"`
	Pose       entity.Pose `json:"pose"`
	Remaining  int         `json:"remaining_seconds"`
	Cooldown   int         `json:"cooldown_seconds"`
	IsLastPose bool        `json:"is_last_pose"`
}

// Machine is not safe for concurrent use; Runner serialises access to it.
type Machine struct {
	day       int
	poses     []entity.Pose
	autoPlay  bool
	index     int
	state     State
	remaining int
	cooldown  int
}

type Option func(*Machine)

// WithAutoPlay controls whether the next pose starts playing on its own
// once the cooldown is over. Defaults to true.
func WithAutoPlay(autoPlay bool) Option {
	return func(m *Machine) {
		m.autoPlay = autoPlay
	}
}

func NewMachine(day int, poses []entity.Pose, opts ...Option) (*Machine, error) {
	if len(poses) == 0 {
		return nil, ErrNoPoses
	}
	m := &Machine{
		day:      day,
		poses:    append([]entity.Pose(nil), poses...),
		autoPlay: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Reset()
	return m, nil
}

func PoseSeconds(p entity.Pose) int {
	if p.DurationSeconds <= 0 {
		return DefaultPoseSeconds
	}
	return p.DurationSeconds
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Play() {
	if m.state == Idle || m.state == Paused {
		m.state = Playing
	}
}

func (m *Machine) Pause() {
	if m.state == Playing {
		m.state = Paused
	}
}

// Tick advances the machine by one second.
func (m *Machine) Tick() Event {
	switch m.state {
	case Playing:
		m.remaining--
		if m.remaining <= 0 {
			m.remaining = 0
			m.state = Ended
			m.enterCooldown()
		}
	case Cooldown:
		m.cooldown--
		if m.cooldown <= 0 {
			return m.advance()
		}
	}
	return None
}

// Skip cuts the cooldown short. It does nothing in any other state, so a
// skip racing the last cooldown tick cannot finish the session twice.
func (m *Machine) Skip() Event {
	if m.state != Cooldown {
		return None
	}
	return m.advance()
}

func (m *Machine) Reset() {
	m.index = 0
	m.state = Idle
	m.remaining = PoseSeconds(m.poses[0])
	m.cooldown = 0
}

// Completion returns the arguments the journey is credited with.
func (m *Machine) Completion() (day, poses int, minutes float64) {
	total := 0
	for _, p := range m.poses {
		total += PoseSeconds(p)
	}
	return m.day, len(m.poses), float64(total) / 60
}

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Day:        m.day,
		State:      m.state,
		PoseIndex:  m.index,
		TotalPoses: len(m.poses),
		Pose:       m.poses[m.index],
		Remaining:  m.remaining,
		Cooldown:   m.cooldown,
		IsLastPose: m.index == len(m.poses)-1,
	}
}

func (m *Machine) enterCooldown() {
	m.state = Cooldown
	m.cooldown = CooldownSeconds
}

func (m *Machine) advance() Event {
	m.cooldown = 0
	if m.index == len(m.poses)-1 {
		m.state = Completed
		return Finished
	}
	m.index++
	m.remaining = PoseSeconds(m.poses[m.index])
	if m.autoPlay {
		m.state = Playing
	} else {
		m.state = Idle
	}
	return Advanced
}
