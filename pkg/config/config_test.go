package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/streakfit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("STREAKFIT_TEST_ADDR=:9090\nSTREAKFIT_TEST_TTL=2h\nSTREAKFIT_TEST_DB=3\nSTREAKFIT_TEST_SECURE=true\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg := config.New()
	t.Run("string from file", func(t *testing.T) {
		assert.Equal(t, ":9090", cfg.GetString("STREAKFIT_TEST_ADDR"))
	})
	t.Run("string default", func(t *testing.T) {
		assert.Equal(t, "memory", cfg.GetStringOr("STREAKFIT_TEST_MISSING", "memory"))
	})
	t.Run("duration", func(t *testing.T) {
		assert.Equal(t, 2*time.Hour, cfg.GetDuration("STREAKFIT_TEST_TTL", time.Minute))
		assert.Equal(t, time.Minute, cfg.GetDuration("STREAKFIT_TEST_MISSING", time.Minute))
	})
	t.Run("int", func(t *testing.T) {
		assert.Equal(t, 3, cfg.GetInt("STREAKFIT_TEST_DB", 0))
		assert.Equal(t, 7, cfg.GetInt("STREAKFIT_TEST_MISSING", 7))
	})
	t.Run("bool", func(t *testing.T) {
		assert.True(t, cfg.GetBool("STREAKFIT_TEST_SECURE", false))
		assert.False(t, cfg.GetBool("STREAKFIT_TEST_MISSING", false))
	})
}
