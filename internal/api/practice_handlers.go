package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/yogajourney/internal/error_values"
	"github.com/limbo/yogajourney/internal/service"
	"github.com/limbo/yogajourney/pkg/httputil"
)

type OpenSessionRequest struct {
	Day int `json:"day"`
}

func (s *Server) OpenSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("open session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req OpenSessionRequest
	if err = httputil.DecodeJSONBody(r, &req); err != nil {
		logger.Error("open session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	view, err := s.practiceService.Open(ctx, uid, req.Day)
	if err != nil {
		writeDayError(w, logger, "open session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, view)
	logger.Info("practice session opened")
}

func (s *Server) CurrentSession(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, "current session", s.practiceService.Current)
}

// ControlSession applies play, pause or skip to the open session.
func (s *Server) ControlSession(w http.ResponseWriter, r *http.Request) {
	var control func(uuid.UUID) (*service.SessionView, error)
	action := chi.URLParam(r, "action")
	switch action {
	case "play":
		control = s.practiceService.Play
	case "pause":
		control = s.practiceService.Pause
	case "skip":
		control = s.practiceService.Skip
	default:
		GetLoggerFromCtx(r.Context()).Error("session control error: unknown action")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown session action, expected play, pause or skip", nil)
		return
	}
	s.withSession(w, r, action+" session", control)
}

func (s *Server) CloseSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("close session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	if err = s.practiceService.Close(uid); err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no open practice session", nil)
			return
		}
		logger.Error("close session error: service error")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while closing session", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("practice session closed")
}

func (s *Server) withSession(w http.ResponseWriter, r *http.Request, op string, f func(uuid.UUID) (*service.SessionView, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	view, err := f(uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no open practice session", nil)
			return
		}
		logger.Error(op + " error: service error")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error in practice session", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}
