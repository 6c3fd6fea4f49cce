package config

// Color constants for logging
const (
	ColorGreen = "\033[32m"
	ColorBlue  = "\033[34m"
	ColorCyan  = "\033[36m"
	ColorReset = "\033[0m"
)

// Logger component prefixes.
const (
	LogPrefixApp    = "APP"
	LogPrefixSolver = "SOLVER"
	LogPrefixAPI    = "API"
)
