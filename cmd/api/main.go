package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/yogajourney/internal/api"
	"github.com/limbo/yogajourney/internal/repository"
	"github.com/limbo/yogajourney/internal/service"
	"github.com/limbo/yogajourney/pkg/cleanup"
	"github.com/limbo/yogajourney/pkg/config"
	jwtservice "github.com/limbo/yogajourney/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool := repository.NewPool(&dbCfg)
	userService := service.NewUserService(repository.NewUsersRepoWithConn(pool))
	profileService := service.NewProfileService(repository.NewProfilesRepoWithConn(pool))
	journeyService := service.NewJourneyService(
		repository.NewJourneysRepoWithConn(pool),
		repository.NewCompletionsRepoWithConn(pool),
		profileService,
	)
	contentService := service.NewContentService(repository.NewContentRepoWithConn(pool), profileService, journeyService)
	practiceService := service.NewPracticeService(ctx, contentService, journeyService, cfg.GetDuration("PRACTICE_TICK", time.Second))
	cleanup.Register(&cleanup.Job{
		Name: "closing practice sessions",
		F:    practiceService.CloseAll,
	})

	notifier := repository.NewNotifier(pool)
	unsubscribeContent, err := notifier.Subscribe(ctx, repository.ContentChangedChannel, func(string) {
		contentService.Invalidate()
	}, contentService.Invalidate)
	if err != nil {
		log.Fatal("subscribing to content changes error: " + err.Error())
	}
	unsubscribeProfiles, err := notifier.Subscribe(ctx, repository.ProfileChangedChannel, func(payload string) {
		uid, err := uuid.Parse(payload)
		if err != nil {
			slog.Default().Warn("unexpected profile notification payload", slog.String("payload", payload))
			return
		}
		profileService.Forget(uid)
	}, profileService.ForgetAll)
	if err != nil {
		log.Fatal("subscribing to profile changes error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "stopping change listeners",
		F: func() error {
			unsubscribeContent()
			unsubscribeProfiles()
			return nil
		},
	})

	serv := api.New(&api.ServicesList{
		UserService:     userService,
		ProfileService:  profileService,
		JourneyService:  journeyService,
		ContentService:  contentService,
		PracticeService: practiceService,
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
	})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := serv.Shutdown(shutdownCtx); err != nil {
			log.Println("Server shutdown error: " + err.Error())
		}
	}()
	err = serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	stop()
	cleanup.CleanUp()
}
