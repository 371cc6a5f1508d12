package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/limbo/yogajourney/internal/api"
	errorvalues "github.com/limbo/yogajourney/internal/error_values"
	"github.com/limbo/yogajourney/internal/repository"
	"github.com/limbo/yogajourney/internal/service"
	"github.com/limbo/yogajourney/internal/service/mocks"
	"github.com/limbo/yogajourney/pkg/entity"
	jwtservice "github.com/limbo/yogajourney/pkg/jwt_service"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	email    = "test_user@example.com"
	password = "test_password"
	userID   = uuid.New()
	testUser = &entity.User{
		ID:           userID,
		Email:        email,
		PasswordHash: "$2a$10$hash",
	}
)

type serviceMocks struct {
	users    *mocks.MockUserServiceI
	profiles *mocks.MockProfileServiceI
	journeys *mocks.MockJourneyServiceI
	content  *mocks.MockContentServiceI
	practice *mocks.MockPracticeServiceI
}

func newTestServer(t *testing.T) (*api.Server, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		users:    mocks.NewMockUserServiceI(ctrl),
		profiles: mocks.NewMockProfileServiceI(ctrl),
		journeys: mocks.NewMockJourneyServiceI(ctrl),
		content:  mocks.NewMockContentServiceI(ctrl),
		practice: mocks.NewMockPracticeServiceI(ctrl),
	}
	serv := api.New(&api.ServicesList{
		UserService:     m.users,
		ProfileService:  m.profiles,
		JourneyService:  m.journeys,
		ContentService:  m.content,
		PracticeService: m.practice,
		JwtService:      jwtservice.New("secret", time.Hour),
	})
	return serv, m
}

// authed builds a request the way it looks after AuthMiddleware, with
// optional chi url params given as key, value pairs.
func authed(r *http.Request, params ...string) *http.Request {
	ctx := api.WithUserID(r.Context(), userID)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for i := 0; i+1 < len(params); i += 2 {
			rctx.URLParams.Add(params[i], params[i+1])
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func mustMarshal(t *testing.T, v any) []byte {
	body, err := sonic.ConfigDefault.Marshal(v)
	require.NoError(t, err)
	return body
}

func TestRegister(t *testing.T) {
	serv, m := newTestServer(t)
	body := mustMarshal(t, api.RegisterRequest{Email: email, Password: password})
	testCases := []struct {
		name         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			name:         "registered",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				m.users.EXPECT().Register(gomock.Any(), &service.RegisterRequest{Email: email, Password: password}).
					Return(testUser, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			name:         "existed user",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			name:         "validation",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrValidation)
			},
			Body: bytes.NewReader(body),
		},
		{
			name:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			name:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.Register(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", tc.Body))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	serv, m := newTestServer(t)
	body := mustMarshal(t, api.LoginRequest{Email: email, Password: password})
	testCases := []struct {
		name         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			name:         "logged in",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				m.users.EXPECT().Login(gomock.Any(), email, password).Return(testUser, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			name:         "unexist user",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				m.users.EXPECT().Login(gomock.Any(), email, password).Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			name:         "wrong password",
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				m.users.EXPECT().Login(gomock.Any(), email, password).Return(nil, errorvalues.ErrWrongCredentials)
			},
			Body: bytes.NewReader(body),
		},
		{
			name:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				m.users.EXPECT().Login(gomock.Any(), email, password).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			name:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         http.NoBody,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", tc.Body))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusOK {
				result := make(map[string]any)
				require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&result))
				assert.Equal(t, userID.String(), result["uid"])
				assert.NotEmpty(t, result["token"])
			}
		})
	}
}

func TestLogout(t *testing.T) {
	serv, m := newTestServer(t)
	t.Run("closes session and forgets journey", func(t *testing.T) {
		m.practice.EXPECT().Close(userID).Return(nil)
		m.journeys.EXPECT().Forget(userID)
		rr := httptest.NewRecorder()
		serv.Logout(rr, authed(httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)))
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("no open session", func(t *testing.T) {
		m.practice.EXPECT().Close(userID).Return(errorvalues.ErrSessionNotFound)
		m.journeys.EXPECT().Forget(userID)
		rr := httptest.NewRecorder()
		serv.Logout(rr, authed(httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)))
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Logout(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestDeleteAccount(t *testing.T) {
	serv, m := newTestServer(t)
	body := mustMarshal(t, api.DeleteAccountRequest{Password: password})
	testCases := []struct {
		name         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			name:         "deleted",
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				m.users.EXPECT().DeleteAccount(gomock.Any(), userID, password).Return(nil)
				m.practice.EXPECT().Close(userID).Return(errorvalues.ErrSessionNotFound)
				m.journeys.EXPECT().Forget(userID)
			},
		},
		{
			name:         "wrong password",
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				m.users.EXPECT().DeleteAccount(gomock.Any(), userID, password).Return(errorvalues.ErrWrongCredentials)
			},
		},
		{
			name:         "unexist user",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				m.users.EXPECT().DeleteAccount(gomock.Any(), userID, password).Return(errorvalues.ErrUserNotFound)
			},
		},
		{
			name:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				m.users.EXPECT().DeleteAccount(gomock.Any(), userID, password).Return(errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := authed(httptest.NewRequest(http.MethodDelete, "/api/v1/auth/account", bytes.NewReader(body)))
			serv.DeleteAccount(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": "` + uid.String() + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	serv, m := newTestServer(t)
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	token, err := jwtservice.New("secret", time.Hour).GenerateToken(testUser)
	require.NoError(t, err)
	foreign, err := jwtservice.New("another secret", time.Hour).GenerateToken(testUser)
	require.NoError(t, err)

	t.Run("successful auth", func(t *testing.T) {
		m.users.EXPECT().GetByID(gomock.Any(), userID).Return(testUser, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Contains(t, rr.Body.String(), userID.String())
	})
	t.Run("deleted user", func(t *testing.T) {
		m.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("signed with another secret", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+foreign)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("no header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/endpoint", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("not bearer", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Basic "+token)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestRouterRequiresAuth(t *testing.T) {
	serv, _ := newTestServer(t)
	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/journey"},
		{http.MethodPost, "/api/v1/journey/days/1/complete"},
		{http.MethodGet, "/api/v1/profile"},
		{http.MethodGet, "/api/v1/content/days/1"},
		{http.MethodGet, "/api/v1/practice/sessions/current"},
	} {
		rr := httptest.NewRecorder()
		serv.Handler().ServeHTTP(rr, httptest.NewRequest(route.method, route.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode, route.path)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	}
}

func TestUsersHandlersIntegrational(t *testing.T) {
	cfg := setupUsersTestDB(t)
	repo := repository.NewUsersRepo(cfg)
	server := api.New(&api.ServicesList{
		UserService: service.NewUserService(repo),
		JwtService:  jwtservice.New("secret", time.Hour),
	})
	body := mustMarshal(t, api.RegisterRequest{Email: email, Password: password})
	var uid uuid.UUID
	t.Run("successfully registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		server.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		result := make(map[string]any)
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&result))
		uidStr, ok := result["uid"].(string)
		if ok {
			uid = uuid.MustParse(uidStr)
		} else {
			t.Error("invalid response body")
		}
	})
	t.Run("error registering: existed user", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		server.Register(rr, req)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("successfully logged in", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		server.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&result))
		assert.Equal(t, uid.String(), result["uid"])
	})
	t.Run("error login: wrong password", func(t *testing.T) {
		body := mustMarshal(t, api.LoginRequest{Email: email, Password: password + "12345"})
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		server.Login(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
	t.Run("error login: user not found", func(t *testing.T) {
		body := mustMarshal(t, api.LoginRequest{Email: "someone@example.com", Password: password})
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		server.Login(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupUsersTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("yoga"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
