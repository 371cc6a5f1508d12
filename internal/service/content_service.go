package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/yogajourney/internal/error_values"
	"github.com/limbo/yogajourney/internal/journey"
	"github.com/limbo/yogajourney/internal/repository"
	"github.com/limbo/yogajourney/pkg/entity"
	"golang.org/x/sync/singleflight"
)

type catalogKey struct {
	day   int
	level entity.ExperienceLevel
}

// ContentService serves day content from the catalog. Results are cached
// per (day, level) until Invalidate is called.
type ContentService struct {
	repo     repository.ContentRepositoryI
	profiles ProfileServiceI
	journeys JourneyServiceI

	group singleflight.Group
	mu    sync.RWMutex
	cache map[catalogKey][]entity.Pose
}

func NewContentService(contentRepo repository.ContentRepositoryI, profiles ProfileServiceI, journeys JourneyServiceI) *ContentService {
	if contentRepo == nil || profiles == nil || journeys == nil {
		log.Fatal("on content service provided nil dependencies")
	}
	return &ContentService{
		repo:     contentRepo,
		profiles: profiles,
		journeys: journeys,
		cache:    make(map[catalogKey][]entity.Pose),
	}
}

func (cs *ContentService) DayContent(ctx context.Context, uid uuid.UUID, day int) ([]entity.Pose, error) {
	if day < 1 || day > entity.JourneyLength {
		return nil, errorvalues.ErrDayOutOfRange
	}
	state, err := cs.journeys.LoadJourney(ctx, uid)
	if err != nil && !errors.Is(err, errorvalues.ErrJourneyNotLoaded) {
		return nil, err
	}
	if journey.DayStatusOf(state, day) == journey.Locked {
		return nil, errorvalues.ErrDayLocked
	}
	level, err := cs.levelOf(ctx, uid)
	if err != nil {
		return nil, err
	}
	poses, err := cs.catalog(ctx, catalogKey{day: day, level: level})
	if err != nil {
		return nil, err
	}
	if len(poses) == 0 {
		return nil, errorvalues.ErrContentNotFound
	}
	return poses, nil
}

// Invalidate drops every cached day, called when the catalog changes.
func (cs *ContentService) Invalidate() {
	cs.mu.Lock()
	clear(cs.cache)
	cs.mu.Unlock()
	slog.Default().Info("content cache invalidated")
}

// levelOf falls back to beginner for users who skipped onboarding.
func (cs *ContentService) levelOf(ctx context.Context, uid uuid.UUID) (entity.ExperienceLevel, error) {
	profile, err := cs.profiles.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return entity.Beginner, nil
		}
		return "", err
	}
	return profile.ExperienceLevel, nil
}

func (cs *ContentService) catalog(ctx context.Context, key catalogKey) ([]entity.Pose, error) {
	cs.mu.RLock()
	poses, ok := cs.cache[key]
	cs.mu.RUnlock()
	if ok {
		return poses, nil
	}
	v, err, _ := cs.group.Do(fmt.Sprintf("%d/%s", key.day, key.level), func() (any, error) {
		poses, err := cs.repo.GetDayContent(ctx, key.day, key.level)
		if err != nil {
			return nil, errors.New("content repository error: " + err.Error())
		}
		if len(poses) > 0 {
			cs.mu.Lock()
			cs.cache[key] = poses
			cs.mu.Unlock()
		}
		return poses, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Pose), nil
}
