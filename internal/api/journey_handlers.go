package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/yogajourney/internal/error_values"
	"github.com/limbo/yogajourney/internal/journey"
	"github.com/limbo/yogajourney/internal/service"
	"github.com/limbo/yogajourney/pkg/entity"
	"github.com/limbo/yogajourney/pkg/httputil"
)

const (
	dateLayout           = "2006-01-02"
	defaultHistoryWindow = entity.JourneyLength
	warnNotPersisted     = "Your progress is saved for this session but couldn't be stored, it may be lost after logout"
)

type CompleteDayRequest struct {
	Poses   int     `json:"poses"`
	Minutes float64 `json:"minutes"`
}

type JourneyResponse struct {
	Journey    entity.JourneyState `json:"journey"`
	IsComplete bool                `json:"is_complete"`
	Warning    string              `json:"warning,omitempty"`
}

type HistoryResponse struct {
	UserID  string                 `json:"uid"`
	From    string                 `json:"from"`
	To      string                 `json:"to"`
	History []entity.DayCompletion `json:"history"`
}

func (s *Server) GetJourney(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get journey error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	dashboard, err := s.journeyService.Dashboard(ctx, uid)
	if err != nil {
		logger.Error("get journey error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while loading journey", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dashboard)
}

func (s *Server) CompleteDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete day error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	day, err := dayFromPath(r)
	if err != nil {
		logger.Error("complete day error: invalid day in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid day in path value", nil)
		return
	}
	var req CompleteDayRequest
	if err = httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("complete day error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	state, err := s.journeyService.CompleteDay(ctx, uid, &service.CompleteDayRequest{
		Day:     day,
		Poses:   req.Poses,
		Minutes: req.Minutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrJourneyNotPersisted):
			logger.Error("complete day: progress not persisted", slog.Int("day", day), slog.String("error", err.Error()))
			httputil.WriteJSONResponse(w, http.StatusAccepted, JourneyResponse{
				Journey:    state,
				IsComplete: journey.IsJourneyComplete(state),
				Warning:    warnNotPersisted,
			})
		case errors.Is(err, errorvalues.ErrDayLocked):
			logger.Error("complete day error: day is locked", slog.Int("day", day))
			httputil.WriteErrorResponse(w, http.StatusForbidden, "complete the previous day first", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("complete day error: validation", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid completion", err)
		case errors.Is(err, errorvalues.ErrJourneyNotLoaded):
			logger.Error("complete day error: journey not loaded", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "journey progress is unavailable, try again later", nil)
		default:
			logger.Error("complete day error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing day", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, JourneyResponse{
		Journey:    state,
		IsComplete: journey.IsJourneyComplete(state),
	})
	logger.Info("day completed", slog.Int("day", day))
}

func (s *Server) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	to := journey.Today(time.Now())
	if v := r.URL.Query().Get("to"); v != "" {
		if to, err = time.ParseInLocation(dateLayout, v, journey.ReferenceLocation); err != nil {
			logger.Error("get history error: invalid to date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid 'to' date, expected YYYY-MM-DD", nil)
			return
		}
	}
	from := to.AddDate(0, 0, -defaultHistoryWindow)
	if v := r.URL.Query().Get("from"); v != "" {
		if from, err = time.ParseInLocation(dateLayout, v, journey.ReferenceLocation); err != nil {
			logger.Error("get history error: invalid from date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid 'from' date, expected YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	history, err := s.journeyService.History(ctx, uid, from, to)
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("get history error: invalid range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date range", err)
			return
		}
		logger.Error("get history error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting practice history", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, HistoryResponse{
		UserID:  uid.String(),
		From:    from.Format(dateLayout),
		To:      to.Format(dateLayout),
		History: history,
	})
}

func (s *Server) GetDayContent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get content error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	day, err := dayFromPath(r)
	if err != nil {
		logger.Error("get content error: invalid day in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid day in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	poses, err := s.contentService.DayContent(ctx, uid, day)
	if err != nil {
		writeDayError(w, logger, "get content", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"day":   day,
		"poses": poses,
	})
}

func dayFromPath(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "day"))
}

// writeDayError maps errors shared by everything that opens a day.
func writeDayError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrDayOutOfRange):
		logger.Error(op+" error: day out of range")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "day is out of journey range", nil)
	case errors.Is(err, errorvalues.ErrDayLocked):
		logger.Error(op + " error: day is locked")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "complete the previous day first", nil)
	case errors.Is(err, errorvalues.ErrContentNotFound):
		logger.Error(op + " error: no content")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "no content for this day yet", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while loading day content", nil)
	}
}
