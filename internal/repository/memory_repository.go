package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakfit/internal/error_values"
	"github.com/limbo/streakfit/pkg/entity"
)

// MemoryDB is a process-local storage with the same constraints as the
// postgres schema: unique user names, one workout per user and day, and
// workouts removed with their user.
type MemoryDB struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]entity.User
	byName   map[string]uuid.UUID
	workouts map[uuid.UUID]map[time.Time]struct{}
	now      func() time.Time
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		users:    make(map[uuid.UUID]entity.User),
		byName:   make(map[string]uuid.UUID),
		workouts: make(map[uuid.UUID]map[time.Time]struct{}),
		now:      time.Now,
	}
}

func (db *MemoryDB) Users() *MemoryUsersRepository {
	return &MemoryUsersRepository{db: db}
}

func (db *MemoryDB) Workouts() *MemoryWorkoutsRepository {
	return &MemoryWorkoutsRepository{db: db}
}

type MemoryUsersRepository struct {
	db *MemoryDB
}

func (r *MemoryUsersRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, errors.New("user is nil")
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.byName[user.Name]; ok {
		return nil, errorvalues.ErrUserExists
	}
	created := *user
	created.ID = uuid.New()
	created.CreatedAt = r.db.now()
	r.db.users[created.ID] = created
	r.db.byName[created.Name] = created.ID
	return &created, nil
}

func (r *MemoryUsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	id, ok := r.db.byName[name]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	u := r.db.users[id]
	return &u, nil
}

func (r *MemoryUsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	u, ok := r.db.users[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return &u, nil
}

func (r *MemoryUsersRepository) List(ctx context.Context) ([]*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	users := make([]*entity.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		u := u
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].Name < users[j].Name
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *MemoryUsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[uid]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	delete(r.db.users, uid)
	delete(r.db.byName, u.Name)
	delete(r.db.workouts, uid)
	return nil
}

type MemoryWorkoutsRepository struct {
	db *MemoryDB
}

func (r *MemoryWorkoutsRepository) Insert(ctx context.Context, uid uuid.UUID, date time.Time) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[uid]; !ok {
		return false, errorvalues.ErrUserNotFound
	}
	day := entity.DateOf(date)
	days, ok := r.db.workouts[uid]
	if !ok {
		days = make(map[time.Time]struct{})
		r.db.workouts[uid] = days
	}
	if _, marked := days[day]; marked {
		return false, nil
	}
	days[day] = struct{}{}
	return true, nil
}

func (r *MemoryWorkoutsRepository) ListDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return sortedDesc(r.db.workouts[uid]), nil
}

func (r *MemoryWorkoutsRepository) ListAllDates(ctx context.Context) (map[uuid.UUID][]time.Time, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	result := make(map[uuid.UUID][]time.Time, len(r.db.workouts))
	for uid, days := range r.db.workouts {
		if len(days) > 0 {
			result[uid] = sortedDesc(days)
		}
	}
	return result, nil
}

func sortedDesc(days map[time.Time]struct{}) []time.Time {
	dates := make([]time.Time, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}
