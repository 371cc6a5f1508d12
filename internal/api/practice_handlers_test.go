package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/yogajourney/internal/api"
	errorvalues "github.com/limbo/yogajourney/internal/error_values"
	"github.com/limbo/yogajourney/internal/player"
	"github.com/limbo/yogajourney/internal/service"
	"github.com/limbo/yogajourney/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionView(state player.State, notice string) *service.SessionView {
	return &service.SessionView{
		Snapshot: player.Snapshot{
			Day:        1,
			State:      state,
			TotalPoses: 2,
			Pose:       entity.Pose{ID: uuid.New(), Day: 1, Name: "Cat Pose", DurationSeconds: 30},
			Remaining:  30,
		},
		Notice: notice,
	}
}

func TestOpenSession(t *testing.T) {
	serv, m := newTestServer(t)
	body := mustMarshal(t, api.OpenSessionRequest{Day: 1})
	testCases := []struct {
		name         string
		ExpectedCode int
		Body         []byte
		MockPrepFunc func()
	}{
		{
			name:         "opened",
			ExpectedCode: http.StatusCreated,
			Body:         body,
			MockPrepFunc: func() {
				m.practice.EXPECT().Open(gomock.Any(), userID, 1).Return(sessionView(player.Idle, ""), nil)
			},
		},
		{
			name:         "locked day",
			ExpectedCode: http.StatusForbidden,
			Body:         body,
			MockPrepFunc: func() {
				m.practice.EXPECT().Open(gomock.Any(), userID, 1).Return(nil, errorvalues.ErrDayLocked)
			},
		},
		{
			name:         "no content",
			ExpectedCode: http.StatusNotFound,
			Body:         body,
			MockPrepFunc: func() {
				m.practice.EXPECT().Open(gomock.Any(), userID, 1).Return(nil, errorvalues.ErrContentNotFound)
			},
		},
		{
			name:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			Body:         body,
			MockPrepFunc: func() {
				m.practice.EXPECT().Open(gomock.Any(), userID, 1).Return(nil, errors.New("service error"))
			},
		},
		{
			name:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			Body:         []byte("{"),
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/practice/sessions", bytes.NewReader(tc.Body))
			serv.OpenSession(rr, authed(r))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestControlSession(t *testing.T) {
	serv, m := newTestServer(t)
	t.Run("play", func(t *testing.T) {
		m.practice.EXPECT().Play(userID).Return(sessionView(player.Playing, ""), nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/practice/sessions/current/play", nil)
		serv.ControlSession(rr, authed(r, "action", "play"))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var view service.SessionView
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&view))
		assert.Equal(t, player.Playing, view.State)
		assert.Equal(t, "Cat Pose", view.Pose.Name)
	})
	t.Run("pause", func(t *testing.T) {
		m.practice.EXPECT().Pause(userID).Return(sessionView(player.Paused, ""), nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/practice/sessions/current/pause", nil)
		serv.ControlSession(rr, authed(r, "action", "pause"))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("skip without session", func(t *testing.T) {
		m.practice.EXPECT().Skip(userID).Return(nil, errorvalues.ErrSessionNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/practice/sessions/current/skip", nil)
		serv.ControlSession(rr, authed(r, "action", "skip"))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("unknown action", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/practice/sessions/current/rewind", nil)
		serv.ControlSession(rr, authed(r, "action", "rewind"))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestCurrentSession(t *testing.T) {
	serv, m := newTestServer(t)
	t.Run("completed with notice", func(t *testing.T) {
		m.practice.EXPECT().Current(userID).Return(sessionView(player.Completed, "couldn't be saved"), nil)
		rr := httptest.NewRecorder()
		serv.CurrentSession(rr, authed(httptest.NewRequest(http.MethodGet, "/api/v1/practice/sessions/current", nil)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var view service.SessionView
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&view))
		assert.Equal(t, player.Completed, view.State)
		assert.Equal(t, "couldn't be saved", view.Notice)
	})
	t.Run("none", func(t *testing.T) {
		m.practice.EXPECT().Current(userID).Return(nil, errorvalues.ErrSessionNotFound)
		rr := httptest.NewRecorder()
		serv.CurrentSession(rr, authed(httptest.NewRequest(http.MethodGet, "/api/v1/practice/sessions/current", nil)))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestCloseSession(t *testing.T) {
	serv, m := newTestServer(t)
	m.practice.EXPECT().Close(userID).Return(nil)
	rr := httptest.NewRecorder()
	serv.CloseSession(rr, authed(httptest.NewRequest(http.MethodDelete, "/api/v1/practice/sessions/current", nil)))
	assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)

	m.practice.EXPECT().Close(userID).Return(errorvalues.ErrSessionNotFound)
	rr = httptest.NewRecorder()
	serv.CloseSession(rr, authed(httptest.NewRequest(http.MethodDelete, "/api/v1/practice/sessions/current", nil)))
	assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
}
