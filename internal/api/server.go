package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/yogajourney/internal/service"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	mx              *chi.Mux
	srv             *http.Server
	userService     service.UserServiceI
	profileService  service.ProfileServiceI
	journeyService  service.JourneyServiceI
	contentService  service.ContentServiceI
	practiceService service.PracticeServiceI
	jwtService      JWTServiceI
}

type ServicesList struct {
	UserService     service.UserServiceI
	ProfileService  service.ProfileServiceI
	JourneyService  service.JourneyServiceI
	ContentService  service.ContentServiceI
	PracticeService service.PracticeServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		profileService:  servicesOptions.ProfileService,
		journeyService:  servicesOptions.JourneyService,
		contentService:  servicesOptions.ContentService,
		practiceService: servicesOptions.PracticeService,
		jwtService:      servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Post("/auth/logout", s.Logout)
			r.Delete("/auth/account", s.DeleteAccount)

			r.Get("/profile", s.GetProfile)
			r.Put("/profile", s.SaveProfile)

			r.Get("/journey", s.GetJourney)
			r.Post("/journey/days/{day}/complete", s.CompleteDay)
			r.Get("/journey/history", s.GetHistory)

			r.Get("/content/days/{day}", s.GetDayContent)

			r.Route("/practice/sessions", func(r chi.Router) {
				r.Post("/", s.OpenSession)
				r.Get("/current", s.CurrentSession)
				r.Post("/current/{action}", s.ControlSession)
				r.Delete("/current", s.CloseSession)
			})
		})
	})
}

// Handler is the instrumented router, exported for tests.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.mx, "yogajourney",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}))
}

func (s *Server) Run(address string) error {
	s.srv = &http.Server{
		Addr:              address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	slog.Default().Info("server started", slog.String("address", address))
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
