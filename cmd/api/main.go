package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/streakfit/internal/api"
	"github.com/limbo/streakfit/internal/repository"
	"github.com/limbo/streakfit/internal/service"
	"github.com/limbo/streakfit/pkg/cleanup"
	"github.com/limbo/streakfit/pkg/config"
	"github.com/limbo/streakfit/pkg/session"
	"golang.org/x/sync/errgroup"
)

const (
	defaultSessionTTL    = time.Hour * 24 * 30
	defaultMigrationsDir = "./migrations"
	shutdownTimeout      = time.Second * 5
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()

	usersRepo, workoutsRepo := setupStorage(cfg)
	sessions := setupSessions(cfg)
	hasher, err := service.NewPINHasher(cfg.GetStringOr("PIN_HASHING", service.PINHashingPlain))
	if err != nil {
		log.Fatal(err)
	}
	location, err := time.LoadLocation(cfg.GetStringOr("TIMEZONE", "UTC"))
	if err != nil {
		log.Fatal("loading timezone error: " + err.Error())
	}

	userService := service.NewUserService(usersRepo, hasher)
	serv := api.New(&api.ServicesList{
		AuthService:    service.NewAuthService(userService, sessions),
		WorkoutService: service.NewWorkoutService(usersRepo, workoutsRepo),
		Cookie: api.CookieSettings{
			Name:   api.DefaultCookieName,
			Secure: cfg.GetBool("COOKIE_SECURE", false),
			MaxAge: sessions.TTL(),
		},
		Location: location,
	})
	srv := serv.HTTPServer(cfg.GetStringOr("API_ADDRESS", ":8080"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("http server starting", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-ctx.Done():
		case sig := <-quit:
			slog.Info("received signal, shutting down", slog.String("signal", sig.String()))
		}
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("http server shutdown failed", slog.String("error", err.Error()))
		}
		return nil
	})
	if err = g.Wait(); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	if err = cleanup.CleanUp(); err != nil {
		slog.Error("cleanup error", slog.String("error", err.Error()))
	}
	slog.Info("stopped")
}

func setupStorage(cfg *config.Config) (repository.UsersRepositoryI, repository.WorkoutsRepositoryI) {
	switch driver := cfg.GetStringOr("STORAGE_DRIVER", "postgres"); driver {
	case "memory":
		slog.Warn("using in-memory storage, data is lost on restart")
		db := repository.NewMemoryDB()
		return db.Users(), db.Workouts()
	case "postgres":
		dbCfg := repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
			SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
		}
		if cfg.GetBool("MIGRATE_ON_START", true) {
			if err := repository.Migrate(&dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", defaultMigrationsDir)); err != nil {
				log.Fatal(err)
			}
		}
		pool := repository.NewPool(&dbCfg)
		return repository.NewUsersRepoWithConn(pool), repository.NewWorkoutsRepoWithConn(pool)
	default:
		log.Fatalf("unknown storage driver %q", driver)
		return nil, nil
	}
}

func setupSessions(cfg *config.Config) *session.Manager {
	secret := cfg.GetString("SESSION_SECRET")
	if secret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}
	ttl := cfg.GetDuration("SESSION_TTL", defaultSessionTTL)
	switch backend := cfg.GetStringOr("SESSION_BACKEND", "memory"); backend {
	case "memory":
		return session.New(secret, ttl, session.NewMemoryStore())
	case "redis":
		store := session.NewRedisStore(session.RedisCfg{
			Address:  cfg.GetStringOr("REDIS_ADDRESS", "localhost:6379"),
			Password: cfg.GetString("REDIS_PASSWORD"),
			DB:       cfg.GetInt("REDIS_DB", 0),
		})
		return session.New(secret, ttl, store)
	default:
		log.Fatalf("unknown session backend %q", backend)
		return nil
	}
}
