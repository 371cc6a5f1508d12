package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/yogajourney/internal/error_values"
	"github.com/limbo/yogajourney/internal/repository"
	"github.com/limbo/yogajourney/pkg/entity"
)

// Named session lengths offered by onboarding, in minutes.
var sessionPresets = map[string]int{
	"short":  8,
	"medium": 15,
	"long":   25,
}

// ParseSessionDuration accepts a preset name or a number of minutes, as
// decoded from JSON (string or float64).
func ParseSessionDuration(v any) (int, error) {
	switch d := v.(type) {
	case string:
		if minutes, ok := sessionPresets[strings.ToLower(d)]; ok {
			return minutes, nil
		}
		return 0, fmt.Errorf("%w: unknown session duration %q", errorvalues.ErrValidation, d)
	case float64:
		if d != math.Trunc(d) {
			return 0, fmt.Errorf("%w: session duration must be whole minutes", errorvalues.ErrValidation)
		}
		return int(d), nil
	case int:
		return d, nil
	case nil:
		return 0, fmt.Errorf("%w: session duration is required", errorvalues.ErrValidation)
	}
	return 0, fmt.Errorf("%w: session duration has unsupported type %T", errorvalues.ErrValidation, v)
}

type ProfileService struct {
	repo  repository.ProfilesRepositoryI
	mu    sync.RWMutex
	cache map[uuid.UUID]*entity.Profile
}

func NewProfileService(profilesRepo repository.ProfilesRepositoryI) *ProfileService {
	if profilesRepo == nil {
		log.Fatal("provided nil profilesRepo")
	}
	return &ProfileService{
		repo:  profilesRepo,
		cache: make(map[uuid.UUID]*entity.Profile),
	}
}

func (ps *ProfileService) SaveProfile(ctx context.Context, uid uuid.UUID, req *SaveProfileRequest) (*entity.Profile, error) {
	for i, d := range req.PracticeDays {
		req.PracticeDays[i] = strings.ToLower(d)
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	_, err := ps.GetProfile(ctx, uid)
	switch {
	case err == nil:
		return nil, errorvalues.ErrProfileLocked
	case !errors.Is(err, errorvalues.ErrProfileNotFound):
		return nil, err
	}
	err = ps.repo.Create(ctx, &entity.Profile{
		UserID:          uid,
		ExperienceLevel: entity.ExperienceLevel(req.ExperienceLevel),
		SessionDuration: req.SessionDuration,
		PracticeDays:    req.PracticeDays,
		ReminderTime:    req.ReminderTime,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileLocked) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	return ps.GetProfile(ctx, uid)
}

func (ps *ProfileService) GetProfile(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	ps.mu.RLock()
	cached, ok := ps.cache[uid]
	ps.mu.RUnlock()
	if ok {
		return cached, nil
	}
	profile, err := ps.repo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	ps.mu.Lock()
	ps.cache[uid] = profile
	ps.mu.Unlock()
	return profile, nil
}

// Forget drops the cached profile so the next read goes to the store.
func (ps *ProfileService) Forget(uid uuid.UUID) {
	ps.mu.Lock()
	delete(ps.cache, uid)
	ps.mu.Unlock()
}

// ForgetAll empties the cache, for when change notifications may have been missed.
func (ps *ProfileService) ForgetAll() {
	ps.mu.Lock()
	clear(ps.cache)
	ps.mu.Unlock()
}
