package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakfit/internal/error_values"
	"github.com/limbo/streakfit/internal/repository"
	"github.com/limbo/streakfit/pkg/entity"
)

const (
	MessageMarked        = "Workout marked successfully!"
	MessageAlreadyMarked = "Workout already marked for today"
)

type WorkoutService struct {
	usersRepo    repository.UsersRepositoryI
	workoutsRepo repository.WorkoutsRepositoryI
}

func NewWorkoutService(usersRepo repository.UsersRepositoryI, workoutsRepo repository.WorkoutsRepositoryI) *WorkoutService {
	if usersRepo == nil || workoutsRepo == nil {
		log.Fatal("on workout service provided nil repos")
	}
	return &WorkoutService{
		usersRepo:    usersRepo,
		workoutsRepo: workoutsRepo,
	}
}

func (ws *WorkoutService) MarkWorkout(ctx context.Context, uid uuid.UUID, today time.Time) (*entity.MarkResult, error) {
	today = entity.DateOf(today)
	inserted, err := ws.workoutsRepo.Insert(ctx, uid, today)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	dates, err := ws.workoutsRepo.ListDates(ctx, uid)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	stats := ComputeStreak(dates, today)
	result := &entity.MarkResult{
		Success:   inserted,
		Streak:    stats.CurrentStreak,
		TotalDays: stats.TotalDays,
	}
	if inserted {
		result.Message = MessageMarked
	} else {
		result.AlreadyMarked = true
		result.Message = MessageAlreadyMarked
	}
	return result, nil
}

func (ws *WorkoutService) GetDashboard(ctx context.Context, uid uuid.UUID, today time.Time) (*entity.Dashboard, error) {
	user, err := ws.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	dates, err := ws.workoutsRepo.ListDates(ctx, uid)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return buildDashboard(user.Name, ComputeStreak(dates, today), today), nil
}

// Leaderboard ranks users with at least one workout by current streak, then
// by total days. Ties keep a stable order by name.
func (ws *WorkoutService) Leaderboard(ctx context.Context, currentUID uuid.UUID, today time.Time) ([]entity.LeaderboardEntry, error) {
	users, err := ws.usersRepo.List(ctx)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	allDates, err := ws.workoutsRepo.ListAllDates(ctx)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	board := make([]entity.LeaderboardEntry, 0, len(allDates))
	for _, u := range users {
		dates, ok := allDates[u.ID]
		if !ok || len(dates) == 0 {
			continue
		}
		stats := ComputeStreak(dates, today)
		board = append(board, entity.LeaderboardEntry{
			Name:             u.Name,
			CurrentStreak:    stats.CurrentStreak,
			TotalWorkoutDays: stats.TotalDays,
			IsCurrentUser:    u.ID == currentUID,
		})
	}
	sort.SliceStable(board, func(i, j int) bool {
		if board[i].CurrentStreak != board[j].CurrentStreak {
			return board[i].CurrentStreak > board[j].CurrentStreak
		}
		if board[i].TotalWorkoutDays != board[j].TotalWorkoutDays {
			return board[i].TotalWorkoutDays > board[j].TotalWorkoutDays
		}
		return board[i].Name < board[j].Name
	})
	for i := range board {
		board[i].Rank = i + 1
	}
	return board, nil
}
