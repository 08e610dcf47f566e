package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// Layout of calendar dates in API responses
	DateLayout = "2006-01-02"

	StatusCompleted = "completed"
)

type User struct {
	ID        uuid.UUID
	Name      string
	PINHash   string
	CreatedAt time.Time
}

type HistoryEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type Dashboard struct {
	Name             string         `json:"name"`
	TodayDate        string         `json:"today_date"`
	CurrentStreak    int            `json:"current_streak"`
	TotalWorkoutDays int            `json:"total_workout_days"`
	TodayMarked      bool           `json:"today_marked"`
	LastWorkoutDate  *string        `json:"last_workout_date"`
	WorkoutHistory   []HistoryEntry `json:"workout_history"`
}

type MarkResult struct {
	Success       bool   `json:"success"`
	AlreadyMarked bool   `json:"already_marked"`
	Message       string `json:"message"`
	Streak        int    `json:"streak"`
	TotalDays     int    `json:"total_days"`
}

type LeaderboardEntry struct {
	Rank             int    `json:"rank"`
	Name             string `json:"name"`
	CurrentStreak    int    `json:"current_streak"`
	TotalWorkoutDays int    `json:"total_workout_days"`
	IsCurrentUser    bool   `json:"is_current_user"`
}

// DateOf drops the time of day, keeping the calendar date of t in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
