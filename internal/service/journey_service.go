package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/yogajourney/internal/error_values"
	"github.com/limbo/yogajourney/internal/journey"
	"github.com/limbo/yogajourney/internal/repository"
	"github.com/limbo/yogajourney/pkg/entity"
	"golang.org/x/sync/errgroup"
)

// JourneyService is the completion recorder. It keeps a session copy of
// every loaded journey; that copy is what a save failure leaves ahead of
// the store until the next successful save.
type JourneyService struct {
	journeys    repository.JourneysRepositoryI
	completions repository.CompletionsRepositoryI
	profiles    ProfileServiceI
	now         func() time.Time

	mu     sync.RWMutex
	states map[uuid.UUID]entity.JourneyState
	locks  sync.Map
}

type JourneyOption func(*JourneyService)

// WithClock replaces time.Now, tests use it to pin "today".
func WithClock(now func() time.Time) JourneyOption {
	return func(js *JourneyService) {
		js.now = now
	}
}

func NewJourneyService(journeysRepo repository.JourneysRepositoryI, completionsRepo repository.CompletionsRepositoryI, profiles ProfileServiceI, opts ...JourneyOption) *JourneyService {
	if journeysRepo == nil || completionsRepo == nil || profiles == nil {
		log.Fatal("on journey service provided nil dependencies")
	}
	js := &JourneyService{
		journeys:    journeysRepo,
		completions: completionsRepo,
		profiles:    profiles,
		now:         time.Now,
		states:      make(map[uuid.UUID]entity.JourneyState),
	}
	for _, opt := range opts {
		opt(js)
	}
	return js
}

func (js *JourneyService) LoadJourney(ctx context.Context, uid uuid.UUID) (entity.JourneyState, error) {
	js.mu.RLock()
	state, ok := js.states[uid]
	js.mu.RUnlock()
	if ok {
		return state.Clone(), nil
	}
	stored, err := js.journeys.Get(ctx, uid)
	switch {
	case errors.Is(err, errorvalues.ErrJourneyNotFound):
		state = entity.NewJourneyState()
	case err != nil:
		return entity.NewJourneyState(), fmt.Errorf("%w: %s", errorvalues.ErrJourneyNotLoaded, err.Error())
	default:
		state = *stored
		state.CurrentDay = journey.NextCurrentDay(state)
	}
	js.mu.Lock()
	defer js.mu.Unlock()
	// a completion cached while the store was read is newer than the row
	if cur, ok := js.states[uid]; ok {
		return cur.Clone(), nil
	}
	js.states[uid] = state
	return state.Clone(), nil
}

func (js *JourneyService) Dashboard(ctx context.Context, uid uuid.UUID) (*Dashboard, error) {
	var (
		profile *entity.Profile
		state   entity.JourneyState
		loadErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := js.profiles.GetProfile(gctx, uid)
		if err != nil && !errors.Is(err, errorvalues.ErrProfileNotFound) {
			return err
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		state, loadErr = js.LoadJourney(gctx, uid)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	d := &Dashboard{
		Profile:           profile,
		Journey:           state,
		Days:              journey.Tiles(state),
		IsComplete:        journey.IsJourneyComplete(state),
		HasCompletedToday: journey.HasCompletedToday(state, js.now()),
	}
	if loadErr != nil {
		slog.Default().Warn("journey load failed, showing defaults", slog.String("uid", uid.String()), slog.String("error", loadErr.Error()))
		d.Warning = "Something went wrong loading your progress"
	}
	return d, nil
}

func (js *JourneyService) CompleteDay(ctx context.Context, uid uuid.UUID, req *CompleteDayRequest) (entity.JourneyState, error) {
	if err := validateStruct(req); err != nil {
		return entity.JourneyState{}, err
	}
	unlock := js.lockUser(uid)
	defer unlock()

	state, err := js.LoadJourney(ctx, uid)
	if err != nil {
		// completing on top of defaults would overwrite the stored journey
		return entity.JourneyState{}, err
	}
	switch journey.DayStatusOf(state, req.Day) {
	case journey.Locked:
		return state, errorvalues.ErrDayLocked
	case journey.Completed:
		return state, nil
	}
	next, _ := journey.CompleteDay(state, req.Day, req.Poses, req.Minutes, js.now())

	js.mu.Lock()
	js.states[uid] = next
	js.mu.Unlock()

	if err = js.journeys.Upsert(ctx, uid, &next); err != nil {
		return next.Clone(), fmt.Errorf("%w: %s", errorvalues.ErrJourneyNotPersisted, err.Error())
	}
	err = js.completions.Create(ctx, &entity.DayCompletion{
		UserID:       uid,
		Day:          req.Day,
		PracticeDate: *next.LastPracticeDate,
		Poses:        req.Poses,
		Minutes:      req.Minutes,
	})
	if err != nil {
		slog.Default().Warn("practice history not saved", slog.String("uid", uid.String()), slog.Int("day", req.Day), slog.String("error", err.Error()))
	}
	return next.Clone(), nil
}

func (js *JourneyService) History(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DayCompletion, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end is before its start", errorvalues.ErrValidation)
	}
	history, err := js.completions.GetByUserAndDateRange(ctx, uid, journey.Today(from), journey.Today(to))
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	return history, nil
}

func (js *JourneyService) Forget(uid uuid.UUID) {
	js.mu.Lock()
	delete(js.states, uid)
	js.mu.Unlock()
}

func (js *JourneyService) lockUser(uid uuid.UUID) func() {
	m, _ := js.locks.LoadOrStore(uid, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
