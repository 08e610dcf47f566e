package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/streakfit/pkg/entity"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/limbo/streakfit/internal/service AuthServiceI,WorkoutServiceI

type RegisterRequest struct {
	Name string `validate:"required,max=100"`
	PIN  string `validate:"pin"`
}

type UserServiceI interface {
	// Validates name and pin, creates the user. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Checks credentials. Unknown name and wrong pin give the same error
	Authenticate(ctx context.Context, name, pin string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, pin string) error
}

type SessionManagerI interface {
	Issue(ctx context.Context, uid uuid.UUID) (string, error)
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
	End(ctx context.Context, token string) error
}

type AuthServiceI interface {
	// Registers user and opens a session for it
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, string, error)
	Login(ctx context.Context, name, pin string) (*entity.User, string, error)
	// Returns the user bound to token
	ResolveSession(ctx context.Context, token string) (*entity.User, error)
	Logout(ctx context.Context, token string) error
	DeleteAccount(ctx context.Context, uid uuid.UUID, pin, token string) error
}

type WorkoutServiceI interface {
	// Marks today for uid. Marking an already marked day is not an error
	MarkWorkout(ctx context.Context, uid uuid.UUID, today time.Time) (*entity.MarkResult, error)
	GetDashboard(ctx context.Context, uid uuid.UUID, today time.Time) (*entity.Dashboard, error)
	Leaderboard(ctx context.Context, currentUID uuid.UUID, today time.Time) ([]entity.LeaderboardEntry, error)
}
