package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP         string // Host IP for the HTTP API
	RESTPort       int    // Port for the REST API
	GinMode        string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret      string // Secret key for JWT signing; empty disables API auth
	JWTIssuer      string // Issuer claim for JWTs
	InputDir       string // Directory with personal puzzle inputs overriding the embedded ones
	LogLevel       string // Minimum log level (debug, info, warn, error)
	PatrolMaxSteps int    // Step limit for a single guard patrol; 0 means unlimited
	SolveTimeout   int    // Seconds a single solve may take
	Workers        int    // Concurrent tasks for parallel scans; 0 means GOMAXPROCS
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
	}

	return Config{
		HostIP:         getEnvWithDefault("HOST_IP", "127.0.0.1"),
		RESTPort:       getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:        getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:      getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:      getEnvWithDefault("JWT_ISSUER", "advent2024"),
		InputDir:       getEnvWithDefault("INPUT_DIR", ""),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		PatrolMaxSteps: getEnvAsIntWithDefault("PATROL_MAX_STEPS", 0),
		SolveTimeout:   getEnvAsIntWithDefault("SOLVE_TIMEOUT_SECONDS", 60),
		Workers:        getEnvAsIntWithDefault("WORKERS", 0),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer.
// It logs a fatal error if the value is set but cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
