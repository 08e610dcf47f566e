package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakfit/internal/error_values"
	"github.com/limbo/streakfit/pkg/entity"
)

// AuthService binds users to sessions.
type AuthService struct {
	users    UserServiceI
	sessions SessionManagerI
}

func NewAuthService(users UserServiceI, sessions SessionManagerI) *AuthService {
	if users == nil || sessions == nil {
		log.Fatal("on auth service provided nil users or sessions")
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

func (as *AuthService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, string, error) {
	user, err := as.users.Register(ctx, req)
	if err != nil {
		return nil, "", err
	}
	token, err := as.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (as *AuthService) Login(ctx context.Context, name, pin string) (*entity.User, string, error) {
	user, err := as.users.Authenticate(ctx, name, pin)
	if err != nil {
		return nil, "", err
	}
	token, err := as.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResolveSession returns ErrUserNotFound when the session outlived its user;
// that session is ended on the way.
func (as *AuthService) ResolveSession(ctx context.Context, token string) (*entity.User, error) {
	uid, err := as.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := as.users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			if endErr := as.sessions.End(ctx, token); endErr != nil {
				slog.Warn("ending orphaned session failed", slog.String("error", endErr.Error()))
			}
		}
		return nil, err
	}
	return user, nil
}

func (as *AuthService) Logout(ctx context.Context, token string) error {
	return as.sessions.End(ctx, token)
}

func (as *AuthService) DeleteAccount(ctx context.Context, uid uuid.UUID, pin, token string) error {
	if err := as.users.DeleteAccount(ctx, uid, pin); err != nil {
		return err
	}
	return as.sessions.End(ctx, token)
}
