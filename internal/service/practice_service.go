package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/yogajourney/internal/error_values"
	"github.com/limbo/yogajourney/internal/player"
)

const (
	noticeNotPersisted = "Your practice was recorded for this session but couldn't be saved"
	noticeNotRecorded  = "Something went wrong recording your practice"
)

// PracticeService keeps at most one running practice session per user.
// Sessions outlive the request that opened them, they run on the
// service's own context.
type PracticeService struct {
	content  ContentServiceI
	journeys JourneyServiceI
	tick     time.Duration

	ctx      context.Context
	mu       sync.Mutex
	sessions map[uuid.UUID]*player.Runner
}

func NewPracticeService(ctx context.Context, content ContentServiceI, journeys JourneyServiceI, tick time.Duration) *PracticeService {
	if content == nil || journeys == nil {
		log.Fatal("on practice service provided nil dependencies")
	}
	return &PracticeService{
		content:  content,
		journeys: journeys,
		tick:     tick,
		ctx:      ctx,
		sessions: make(map[uuid.UUID]*player.Runner),
	}
}

func (ps *PracticeService) Open(ctx context.Context, uid uuid.UUID, day int) (*SessionView, error) {
	poses, err := ps.content.DayContent(ctx, uid, day)
	if err != nil {
		return nil, err
	}
	machine, err := player.NewMachine(day, poses)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrContentNotFound, err)
	}
	var runner *player.Runner
	runner = player.NewRunner(machine, ps.tick, func(day, poses int, minutes float64) {
		ps.record(uid, runner, day, poses, minutes)
	})

	ps.mu.Lock()
	old := ps.sessions[uid]
	ps.sessions[uid] = runner
	ps.mu.Unlock()
	if old != nil {
		old.Close()
	}
	runner.Start(ps.ctx)
	return ps.view(runner), nil
}

func (ps *PracticeService) Current(uid uuid.UUID) (*SessionView, error) {
	runner, err := ps.session(uid)
	if err != nil {
		return nil, err
	}
	return ps.view(runner), nil
}

func (ps *PracticeService) Play(uid uuid.UUID) (*SessionView, error) {
	return ps.control(uid, (*player.Runner).Play)
}

func (ps *PracticeService) Pause(uid uuid.UUID) (*SessionView, error) {
	return ps.control(uid, (*player.Runner).Pause)
}

func (ps *PracticeService) Skip(uid uuid.UUID) (*SessionView, error) {
	return ps.control(uid, (*player.Runner).Skip)
}

func (ps *PracticeService) Close(uid uuid.UUID) error {
	ps.mu.Lock()
	runner, ok := ps.sessions[uid]
	delete(ps.sessions, uid)
	ps.mu.Unlock()
	if !ok {
		return errorvalues.ErrSessionNotFound
	}
	runner.Close()
	return nil
}

// CloseAll stops every running session, used on shutdown.
func (ps *PracticeService) CloseAll() error {
	ps.mu.Lock()
	sessions := ps.sessions
	ps.sessions = make(map[uuid.UUID]*player.Runner)
	ps.mu.Unlock()
	for _, runner := range sessions {
		runner.Close()
	}
	return nil
}

func (ps *PracticeService) control(uid uuid.UUID, f func(*player.Runner) player.Snapshot) (*SessionView, error) {
	runner, err := ps.session(uid)
	if err != nil {
		return nil, err
	}
	snap := f(runner)
	_, notice := runner.Snapshot()
	return &SessionView{Snapshot: snap, Notice: notice}, nil
}

func (ps *PracticeService) session(uid uuid.UUID) (*player.Runner, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	runner, ok := ps.sessions[uid]
	if !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	return runner, nil
}

func (ps *PracticeService) view(runner *player.Runner) *SessionView {
	snap, notice := runner.Snapshot()
	return &SessionView{Snapshot: snap, Notice: notice}
}

// record runs on the session goroutine once the last pose's cooldown is over.
func (ps *PracticeService) record(uid uuid.UUID, runner *player.Runner, day, poses int, minutes float64) {
	logger := slog.Default().With(slog.String("uid", uid.String()), slog.Int("day", day))
	_, err := ps.journeys.CompleteDay(ps.ctx, uid, &CompleteDayRequest{
		Day:     day,
		Poses:   poses,
		Minutes: minutes,
	})
	switch {
	case err == nil:
		logger.Info("practice day completed", slog.Int("poses", poses), slog.Float64("minutes", minutes))
	case errors.Is(err, errorvalues.ErrJourneyNotPersisted):
		logger.Error("practice completion not persisted", slog.String("error", err.Error()))
		runner.SetNotice(noticeNotPersisted)
	default:
		logger.Error("practice completion failed", slog.String("error", err.Error()))
		runner.SetNotice(noticeNotRecorded)
	}
}
