package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/streakfit/internal/error_values"
)

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepoWithConn(conn PgConnection) *WorkoutsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for workoutsRepo: " + err.Error())
	}
	return &WorkoutsRepository{
		conn: conn,
	}
}

// Insert relies on the (user_id, workout_date) primary key: a concurrent
// second insert for the same day affects no rows instead of failing.
func (wr *WorkoutsRepository) Insert(ctx context.Context, uid uuid.UUID, date time.Time) (bool, error) {
	ct, err := wr.conn.Exec(
		ctx,
		`INSERT INTO workouts (user_id, workout_date) VALUES ($1, $2) ON CONFLICT (user_id, workout_date) DO NOTHING;`,
		uid,
		date,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return false, errorvalues.ErrUserNotFound
		}
		return false, errors.New("creating workout error: " + err.Error())
	}
	return ct.RowsAffected() == 1, nil
}

func (wr *WorkoutsRepository) ListDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := wr.conn.Query(
		ctx,
		`SELECT workout_date FROM workouts WHERE user_id = $1 ORDER BY workout_date DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting workout dates error: " + err.Error())
	}
	defer rows.Close()
	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err = rows.Scan(&date); err != nil {
			return nil, errors.New("workout row parsing error: " + err.Error())
		}
		dates = append(dates, date)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected workout rows error: " + err.Error())
	}
	return dates, nil
}

func (wr *WorkoutsRepository) ListAllDates(ctx context.Context) (map[uuid.UUID][]time.Time, error) {
	rows, err := wr.conn.Query(
		ctx,
		`SELECT user_id, workout_date FROM workouts ORDER BY user_id, workout_date DESC;`,
	)
	if err != nil {
		return nil, errors.New("getting all workout dates error: " + err.Error())
	}
	defer rows.Close()
	result := make(map[uuid.UUID][]time.Time)
	for rows.Next() {
		var (
			uid  uuid.UUID
			date time.Time
		)
		if err = rows.Scan(&uid, &date); err != nil {
			return nil, errors.New("workout row parsing error: " + err.Error())
		}
		result[uid] = append(result[uid], date)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected workout rows error: " + err.Error())
	}
	return result, nil
}
