package api

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/streakfit/internal/service"
)

const (
	DefaultCookieName = "session_id"
	requestTimeout    = time.Second * 10
)

type Server struct {
	mx             *chi.Mux
	authService    service.AuthServiceI
	workoutService service.WorkoutServiceI
	cookie         CookieSettings
	location       *time.Location
	now            func() time.Time
}

type ServicesList struct {
	AuthService    service.AuthServiceI
	WorkoutService service.WorkoutServiceI
	Cookie         CookieSettings
	// Calendar days are taken in this location. Defaults to UTC
	Location *time.Location
	// Defaults to time.Now
	Clock func() time.Time
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions.AuthService == nil || servicesOptions.WorkoutService == nil {
		log.Fatal("on api server provided nil services")
	}
	s := &Server{
		mx:             chi.NewMux(),
		authService:    servicesOptions.AuthService,
		workoutService: servicesOptions.WorkoutService,
		cookie:         servicesOptions.Cookie,
		location:       servicesOptions.Location,
		now:            servicesOptions.Clock,
	}
	if s.cookie.Name == "" {
		s.cookie.Name = DefaultCookieName
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.AccessLogMiddleware)

	s.mx.Route("/api", func(r chi.Router) {
		r.Get("/healthz", s.Healthz)
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
		r.Post("/logout", s.Logout)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/dashboard", s.Dashboard)
			r.Post("/mark-workout", s.MarkWorkout)
			r.Get("/leaderboard", s.Leaderboard)
			r.Delete("/account", s.DeleteAccount)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// HTTPServer wraps s for addr. The caller owns ListenAndServe and Shutdown.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: time.Second * 5,
	}
}
