package errorvalues_test

import (
	"errors"
	"fmt"
	"testing"

	errorvalues "github.com/limbo/streakfit/internal/error_values"
	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	testCases := []struct {
		Desc string
		Err  error
		Kind string
	}{
		{Desc: "invalid pin", Err: errorvalues.ErrInvalidPIN, Kind: errorvalues.KindValidation},
		{Desc: "empty name", Err: errorvalues.ErrEmptyName, Kind: errorvalues.KindValidation},
		{Desc: "user exists", Err: errorvalues.ErrUserExists, Kind: errorvalues.KindConflict},
		{Desc: "wrong credentials", Err: errorvalues.ErrWrongCredentials, Kind: errorvalues.KindAuth},
		{Desc: "invalid session", Err: errorvalues.ErrInvalidSession, Kind: errorvalues.KindAuth},
		{Desc: "user not found hidden as auth", Err: errorvalues.ErrUserNotFound, Kind: errorvalues.KindAuth},
		{Desc: "wrapped", Err: fmt.Errorf("registering: %w", errorvalues.ErrUserExists), Kind: errorvalues.KindConflict},
		{Desc: "storage error", Err: errors.New("creating user db error: conn refused"), Kind: errorvalues.KindInternal},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Kind, errorvalues.Kind(tc.Err))
		})
	}
}
