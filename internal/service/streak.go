package service

import (
	"sort"
	"time"

	"github.com/limbo/streakfit/pkg/entity"
)

const HistoryLimit = 10

type StreakStats struct {
	CurrentStreak int
	TotalDays     int
	TodayMarked   bool
	LastWorkout   *time.Time
	// Newest first, at most HistoryLimit dates
	History []time.Time
}

// ComputeStreak derives the streak state of a workout log as of today.
// A streak is still alive while only today is unmarked: the walk starts at
// today when it is marked and at yesterday otherwise.
func ComputeStreak(dates []time.Time, today time.Time) StreakStats {
	today = entity.DateOf(today)
	marked := make(map[time.Time]struct{}, len(dates))
	distinct := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		d = entity.DateOf(d)
		if _, ok := marked[d]; ok {
			continue
		}
		marked[d] = struct{}{}
		distinct = append(distinct, d)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i].After(distinct[j]) })

	stats := StreakStats{
		TotalDays: len(distinct),
	}
	_, stats.TodayMarked = marked[today]
	if len(distinct) > 0 {
		last := distinct[0]
		stats.LastWorkout = &last
	}
	stats.History = distinct[:min(len(distinct), HistoryLimit)]

	cursor := today
	if !stats.TodayMarked {
		cursor = today.AddDate(0, 0, -1)
	}
	for {
		if _, ok := marked[cursor]; !ok {
			break
		}
		stats.CurrentStreak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return stats
}

func buildDashboard(name string, stats StreakStats, today time.Time) *entity.Dashboard {
	d := &entity.Dashboard{
		Name:             name,
		TodayDate:        entity.FormatDate(entity.DateOf(today)),
		CurrentStreak:    stats.CurrentStreak,
		TotalWorkoutDays: stats.TotalDays,
		TodayMarked:      stats.TodayMarked,
		WorkoutHistory:   make([]entity.HistoryEntry, 0, len(stats.History)),
	}
	if stats.LastWorkout != nil {
		last := entity.FormatDate(*stats.LastWorkout)
		d.LastWorkoutDate = &last
	}
	for _, date := range stats.History {
		d.WorkoutHistory = append(d.WorkoutHistory, entity.HistoryEntry{
			Date:   entity.FormatDate(date),
			Status: entity.StatusCompleted,
		})
	}
	return d
}
