package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/streakfit/pkg/entity"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/limbo/streakfit/internal/repository UsersRepositoryI,WorkoutsRepositoryI

type UsersRepositoryI interface {
	// Creates new user. Returns the stored record with ID and CreatedAt filled
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	// Looks up user by name. Used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Used for session resolution
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Lists all users in registration order
	List(ctx context.Context) ([]*entity.User, error)
	// Deletes user together with its workouts
	Delete(ctx context.Context, uid uuid.UUID) error
}

type WorkoutsRepositoryI interface {
	// Stores workout of uid on date. Returns false without error if the day is already marked
	Insert(ctx context.Context, uid uuid.UUID, date time.Time) (bool, error)
	// Distinct workout dates of uid, newest first
	ListDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
	// Workout dates of every user, newest first per user
	ListAllDates(ctx context.Context) (map[uuid.UUID][]time.Time, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	sslMode := pgcfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgresql://%s:%s@%s/%s?sslmode=%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB, sslMode)
}
