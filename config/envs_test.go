package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("ADVENT_TEST_STRING", "value")
	t.Setenv("ADVENT_TEST_INT", "42")

	assert.Equal(t, "value", getEnvWithDefault("ADVENT_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", getEnvWithDefault("ADVENT_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, getEnvAsIntWithDefault("ADVENT_TEST_INT", 7))
	assert.Equal(t, 7, getEnvAsIntWithDefault("ADVENT_TEST_MISSING", 7))
}

func TestDefaults(t *testing.T) {
	t.Setenv("REST_PORT", "9090")
	t.Setenv("PATROL_MAX_STEPS", "100")

	c := initConfig()
	assert.Equal(t, 9090, c.RESTPort)
	assert.Equal(t, 100, c.PatrolMaxSteps)
	assert.NotEmpty(t, c.JWTIssuer)
}
