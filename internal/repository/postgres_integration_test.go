package repository_test

import (
	"context"
	"testing"
	"time"

	errorvalues "github.com/limbo/streakfit/internal/error_values"
	"github.com/limbo/streakfit/internal/repository"
	"github.com/limbo/streakfit/pkg/cleanup"
	"github.com/limbo/streakfit/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("streakfit"),
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
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &testPGConfig{
		connStr: connStr,
	}
	if err = repository.Migrate(cfg, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestRepositoriesIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	pool := repository.NewPool(setupTestDB(t))
	t.Cleanup(func() { cleanup.CleanUp() })
	users := repository.NewUsersRepoWithConn(pool)
	workouts := repository.NewWorkoutsRepoWithConn(pool)
	ctx := context.Background()

	var alice *entity.User
	var err error
	t.Run("user created", func(t *testing.T) {
		alice, err = users.Create(ctx, &entity.User{Name: "alice", PINHash: "1234"})
		require.NoError(t, err)
		found, err := users.FindByName(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, found.ID)
	})
	t.Run("duplicate name rejected", func(t *testing.T) {
		_, err := users.Create(ctx, &entity.User{Name: "alice", PINHash: "0000"})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("one workout per day", func(t *testing.T) {
		inserted, err := workouts.Insert(ctx, alice.ID, day(2026, 3, 10))
		require.NoError(t, err)
		assert.True(t, inserted)
		inserted, err = workouts.Insert(ctx, alice.ID, day(2026, 3, 10))
		require.NoError(t, err)
		assert.False(t, inserted)
		_, err = workouts.Insert(ctx, alice.ID, day(2026, 3, 9))
		require.NoError(t, err)

		dates, err := workouts.ListDates(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, dates, 2)
		assert.Equal(t, "2026-03-10", entity.FormatDate(dates[0]))
		assert.Equal(t, "2026-03-09", entity.FormatDate(dates[1]))
	})
	t.Run("workouts removed with user", func(t *testing.T) {
		require.NoError(t, users.Delete(ctx, alice.ID))
		all, err := workouts.ListAllDates(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
