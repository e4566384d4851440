package config

import (
	"os"
	"strconv"
)

// Daily ceilings for the two metered AI actions.
const (
	DefaultResearchLimit = 5
	DefaultGenerateLimit = 10
)

// UsageLimits configures the daily per-user quota for each metered action.
type UsageLimits struct {
	Research int
	Generate int
}

func DefaultUsageLimits() UsageLimits {
	return UsageLimits{
		Research: DefaultResearchLimit,
		Generate: DefaultGenerateLimit,
	}
}

// NewUsageLimits reads the limits from the environment, falling back to the
// defaults when unset or unparsable.
func NewUsageLimits() UsageLimits {
	return UsageLimits{
		Research: getEnvInt("RESEARCH_DAILY_LIMIT", DefaultResearchLimit),
		Generate: getEnvInt("GENERATE_DAILY_LIMIT", DefaultGenerateLimit),
	}
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
