package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakfit/internal/error_values"
)

// ErrSessionNotFound is returned by stores for unknown or expired ids.
var ErrSessionNotFound = errors.New("session not found")

// Store keeps the server side of sessions. A token is only valid while its
// id is present in the store, so logging out is a delete.
type Store interface {
	Save(ctx context.Context, id string, uid uuid.UUID, ttl time.Duration) error
	Lookup(ctx context.Context, id string) (uuid.UUID, error)
	Delete(ctx context.Context, id string) error
}

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	store  Store
	now    func() time.Time
}

func New(secret string, ttl time.Duration, store Store) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
}

// WithClock replaces the time source, used by tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue opens a session for uid and returns the signed token for the cookie.
func (m *Manager) Issue(ctx context.Context, uid uuid.UUID) (string, error) {
	now := m.now()
	id := uuid.NewString()
	claims := &Claims{
		UserID: uid.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", errors.New("signing session token error: " + err.Error())
	}
	if err = m.store.Save(ctx, id, uid, m.ttl); err != nil {
		return "", errors.New("saving session error: " + err.Error())
	}
	return token, nil
}

// Resolve returns the user bound to token. Missing, tampered, expired and
// ended tokens all give ErrInvalidSession.
func (m *Manager) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.UUID{}, errorvalues.ErrInvalidSession
	}
	claims, err := m.parse(token, true)
	if err != nil {
		return uuid.UUID{}, errorvalues.ErrInvalidSession
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.UUID{}, errorvalues.ErrInvalidSession
	}
	stored, err := m.store.Lookup(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return uuid.UUID{}, errorvalues.ErrInvalidSession
		}
		return uuid.UUID{}, fmt.Errorf("looking up session error: %w", err)
	}
	if stored != uid {
		return uuid.UUID{}, errorvalues.ErrInvalidSession
	}
	return uid, nil
}

// End forgets the session behind token. Unknown, expired or garbage tokens
// are not an error.
func (m *Manager) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := m.parse(token, false)
	if err != nil || claims.ID == "" {
		return nil
	}
	if err = m.store.Delete(ctx, claims.ID); err != nil {
		return errors.New("deleting session error: " + err.Error())
	}
	return nil
}

func (m *Manager) parse(token string, validateClaims bool) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if !validateClaims {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}
	claims := &Claims{}
	parsed, err := jwt.NewParser(opts...).ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
