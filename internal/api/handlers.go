package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/streakfit/internal/error_values"
	"github.com/limbo/streakfit/internal/service"
	"github.com/limbo/streakfit/pkg/entity"
	"github.com/limbo/streakfit/pkg/httputil"
)

const maxBodyBytes = 1 << 16

type RegisterRequest struct {
	Name string `json:"name"`
	PIN  string `json:"pin"`
}

type LoginRequest struct {
	Name string `json:"name"`
	PIN  string `json:"pin"`
}

type DeleteAccountRequest struct {
	PIN string `json:"pin"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := httputil.DecodeJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req)
	if err != nil {
		logger.Info("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errorvalues.KindValidation, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, token, err := s.authService.Register(ctx, &service.RegisterRequest{
		Name: req.Name,
		PIN:  req.PIN,
	})
	if err != nil {
		s.writeServiceError(w, logger, "registering", err)
		return
	}
	s.setSessionCookie(w, token)
	httputil.WriteJSONResponse(w, http.StatusCreated, RegisterResponse{
		Success: true,
		UserID:  user.ID.String(),
		Name:    user.Name,
		Message: "Registration successful",
	})
	logger.Info("successful registration", slog.String("uid", user.ID.String()))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := httputil.DecodeJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req)
	if err != nil {
		logger.Info("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errorvalues.KindValidation, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, token, err := s.authService.Login(ctx, req.Name, req.PIN)
	if err != nil {
		s.writeServiceError(w, logger, "login", err)
		return
	}
	s.setSessionCookie(w, token)
	httputil.WriteJSONResponse(w, http.StatusOK, LoginResponse{
		Success: true,
		Name:    user.Name,
		Message: "Login successful",
	})
	logger.Info("successful login", slog.String("uid", user.ID.String()))
}

// Logout always clears the cookie, also for unknown sessions.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if token := s.sessionToken(r); token != "" {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()
		if err := s.authService.Logout(ctx, token); err != nil {
			logger.Error("logout error: ending session", slog.String("error", err.Error()))
		}
	}
	s.clearSessionCookie(w)
	httputil.WriteJSONResponse(w, http.StatusOK, StatusResponse{
		Success: true,
		Message: "Logged out",
	})
}

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("dashboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, errorvalues.KindAuth, errorvalues.ErrInvalidSession.Error(), nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	dashboard, err := s.workoutService.GetDashboard(ctx, user.ID, s.today())
	if err != nil {
		s.writeServiceError(w, logger, "dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dashboard)
}

func (s *Server) MarkWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("mark workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, errorvalues.KindAuth, errorvalues.ErrInvalidSession.Error(), nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	result, err := s.workoutService.MarkWorkout(ctx, user.ID, s.today())
	if err != nil {
		s.writeServiceError(w, logger, "mark workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("workout marked", slog.Bool("already_marked", result.AlreadyMarked), slog.Int("streak", result.Streak))
}

func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("leaderboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, errorvalues.KindAuth, errorvalues.ErrInvalidSession.Error(), nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	board, err := s.workoutService.Leaderboard(ctx, user.ID, s.today())
	if err != nil {
		s.writeServiceError(w, logger, "leaderboard", err)
		return
	}
	if board == nil {
		board = []entity.LeaderboardEntry{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, board)
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("delete account error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, errorvalues.KindAuth, errorvalues.ErrInvalidSession.Error(), nil)
		return
	}
	var req DeleteAccountRequest
	defer r.Body.Close()
	err = httputil.DecodeJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req)
	if err != nil {
		logger.Info("delete account error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errorvalues.KindValidation, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.authService.DeleteAccount(ctx, user.ID, req.PIN, s.sessionToken(r))
	if err != nil {
		s.writeServiceError(w, logger, "delete account", err)
		return
	}
	s.clearSessionCookie(w)
	httputil.WriteJSONResponse(w, http.StatusOK, StatusResponse{Success: true})
	logger.Info("account deleted")
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) today() time.Time {
	return entity.DateOf(s.now().In(s.location))
}

// writeServiceError maps err to a status by its kind. Internal details only
// go to the log.
func (s *Server) writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	kind := errorvalues.Kind(err)
	switch kind {
	case errorvalues.KindValidation:
		logger.Info(op+" error: validation", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, kind, err.Error(), nil)
	case errorvalues.KindConflict:
		logger.Info(op+" error: conflict", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, kind, err.Error(), nil)
	case errorvalues.KindAuth:
		logger.Info(op+" error: auth", slog.String("error", err.Error()))
		message := err.Error()
		if errors.Is(err, errorvalues.ErrNotFound) {
			message = errorvalues.ErrInvalidSession.Error()
			s.clearSessionCookie(w)
		}
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, kind, message, nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, kind, "internal error during "+op, nil)
	}
}
