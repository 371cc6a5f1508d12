package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/yogajourney/internal/error_values"
	"github.com/limbo/yogajourney/internal/service"
	"github.com/limbo/yogajourney/pkg/httputil"
)

// SaveProfileRequest is the onboarding answers. SessionDuration is either
// a preset name ("short", "medium", "long") or a number of minutes.
type SaveProfileRequest struct {
	ExperienceLevel string   `json:"experience_level"`
	SessionDuration any      `json:"session_duration"`
	PracticeDays    []string `json:"practice_days"`
	ReminderTime    string   `json:"reminder_time"`
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	profile, err := s.profileService.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			logger.Info("get profile: onboarding not done yet")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "profile doesn't exist", nil)
			return
		}
		logger.Error("get profile error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting profile", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
}

func (s *Server) SaveProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SaveProfileRequest
	if err = httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("save profile error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	minutes, err := service.ParseSessionDuration(req.SessionDuration)
	if err != nil {
		logger.Error("save profile error: invalid session duration", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session duration", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	profile, err := s.profileService.SaveProfile(ctx, uid, &service.SaveProfileRequest{
		ExperienceLevel: req.ExperienceLevel,
		SessionDuration: minutes,
		PracticeDays:    req.PracticeDays,
		ReminderTime:    req.ReminderTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("save profile error: validation", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid profile", err)
		case errors.Is(err, errorvalues.ErrProfileLocked):
			logger.Error("save profile error: profile is locked")
			httputil.WriteErrorResponse(w, http.StatusConflict, "profile is already saved and can't be changed", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("save profile error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("save profile error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving profile", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, profile)
	logger.Info("profile saved")
}
