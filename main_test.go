package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beka-birhanu/advent2024/config"
	"github.com/beka-birhanu/advent2024/infrastruture/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		HostIP:       "127.0.0.1",
		RESTPort:     8080,
		GinMode:      "test",
		JWTIssuer:    "advent2024",
		LogLevel:     "error",
		SolveTimeout: 60,
		Workers:      2,
	}
}

func execute(t *testing.T, cfg config.Config, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a, err := newApp(cfg, &stderr)
	require.NoError(t, err)

	root := newRootCmd(a, &stdout)
	root.SetArgs(args)
	err = root.Execute()
	a.sync()
	return stdout.String(), stderr.String(), err
}

func TestPartCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"day1-part1"}, want: "11\n"},
		{args: []string{"day3-part2"}, want: "48\n"},
		{args: []string{"day6-part1"}, want: "41\n"},
		{args: []string{"day6-part2"}, want: "6\n"},
		{args: []string{"day11-part1"}, want: "55312\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			stdout, _, err := execute(t, testConfig(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}

	t.Run("Part commands take no arguments", func(t *testing.T) {
		_, _, err := execute(t, testConfig(), "day1-part1", "extra")
		assert.Error(t, err)
	})

	t.Run("Unimplemented day has no command", func(t *testing.T) {
		_, _, err := execute(t, testConfig(), "day8-part1")
		assert.Error(t, err)
	})

	t.Run("Verbose logs go to stderr only", func(t *testing.T) {
		stdout, stderr, err := execute(t, testConfig(), "--verbose", "day2-part1")
		require.NoError(t, err)
		assert.Equal(t, "2\n", stdout)
		assert.Contains(t, stderr, "SOLVER")
	})
}

func TestVerifyCommand(t *testing.T) {
	stdout, _, err := execute(t, testConfig(), "verify")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, 18)
	for _, line := range lines {
		assert.Contains(t, line, " ok ")
	}
}

func TestTokenCommand(t *testing.T) {
	t.Run("Requires a secret", func(t *testing.T) {
		_, _, err := execute(t, testConfig(), "token", "elf")
		assert.ErrorIs(t, err, errTokenSecret)
	})

	t.Run("Issues a token for the subject", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWTSecret = "secret"

		stdout, _, err := execute(t, cfg, "token", "elf", "--ttl", "1h")
		require.NoError(t, err)

		subject, err := token.NewJwtService("secret", "advent2024").Decode(strings.TrimSpace(stdout))
		require.NoError(t, err)
		assert.Equal(t, "elf", subject)
	})
}

func TestRouterLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		logged  bool
	}{
		{name: "Configured level hides debug", verbose: false, logged: false},
		{name: "Verbose enables API debug logs", verbose: true, logged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			a, err := newApp(testConfig(), &stderr)
			require.NoError(t, err)
			require.NoError(t, a.setup(tt.verbose))

			_, err = a.router()
			require.NoError(t, err)
			a.sync()

			assert.Equal(t, tt.logged, strings.Contains(stderr.String(), "Router initialized"))
			if tt.logged {
				assert.Contains(t, stderr.String(), "[API]")
			}
		})
	}
}
