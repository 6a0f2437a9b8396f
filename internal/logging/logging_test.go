package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelDefaultsToInfo(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	assert.Equal(t, zerolog.InfoLevel, level())
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	assert.Equal(t, zerolog.DebugLevel, level())
}

func TestLevelBadValueFallsBack(t *testing.T) {
	t.Setenv(EnvLogLevel, "chatty")
	assert.Equal(t, zerolog.InfoLevel, level())
}

func TestWithTimestamp(t *testing.T) {
	t.Setenv(EnvLogTimestamp, "")
	assert.True(t, withTimestamp())

	t.Setenv(EnvLogTimestamp, "false")
	assert.False(t, withTimestamp())

	t.Setenv(EnvLogTimestamp, "nonsense")
	assert.True(t, withTimestamp())
}
