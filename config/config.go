package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

// DefaultExerciseDBID points at the exercise collection of the reference
// deployment. Override with EXERCISE_DB_ID.
const DefaultExerciseDBID = "2c9998b2a5188049858fc05be5b60c99"

// Config holds all application configuration
type Config struct {
	// Notion API access
	NotionToken  string
	DatabaseID   string // task collection
	WorkoutDBID  string // workout collection; defaults to DatabaseID
	ProjectDBID  string // project reference collection
	ExerciseDBID string // exercise reference collection

	Addr         string
	DebugEnabled bool

	Auth *AuthConfig
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	BasicAuthUser string
	BasicAuthPass string
}

// Enabled reports whether basic auth credentials are configured
func (a *AuthConfig) Enabled() bool {
	return a != nil && a.BasicAuthUser != "" && a.BasicAuthPass != ""
}

// Load reads configuration from environment variables.
// .env file is automatically loaded via autoload import.
func Load() (*Config, error) {
	var missing []string

	config := &Config{
		NotionToken:  getRequiredEnv("NOTION_TOKEN", &missing),
		DatabaseID:   getRequiredEnv("DATABASE_ID", &missing),
		WorkoutDBID:  getEnvWithDefault("WORKOUT_DB_ID", ""),
		ProjectDBID:  getRequiredEnv("PROJECT_DB_ID", &missing),
		ExerciseDBID: getEnvWithDefault("EXERCISE_DB_ID", DefaultExerciseDBID),
		Addr:         getEnvWithDefault("TASKAPP_ADDR", ":8080"),
		DebugEnabled: getBoolEnvWithDefault("TASKAPP_DEBUG", false),
		Auth: &AuthConfig{
			BasicAuthUser: strings.TrimSpace(os.Getenv("BASIC_AUTH_USER")),
			BasicAuthPass: strings.TrimSpace(os.Getenv("BASIC_AUTH_PASS")),
		},
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	// A dedicated workout collection is optional; deployments that track
	// workouts in the primary collection just leave it unset
	if config.WorkoutDBID == "" {
		config.WorkoutDBID = config.DatabaseID
	}

	if config.DebugEnabled {
		fmt.Printf("🐛 DEBUG: API call logging enabled\n")
	}

	return config, nil
}

// getRequiredEnv reads a required variable and records its key as missing
// when unset. Values are never echoed; these are secrets.
func getRequiredEnv(key string, missing *[]string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		*missing = append(*missing, key)
	}
	return value
}

// getEnvWithDefault gets an environment variable with a default fallback
func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnvWithDefault gets a boolean environment variable with a default fallback
func getBoolEnvWithDefault(key string, defaultValue bool) bool {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
		fmt.Printf("🐛 DEBUG: Invalid boolean value for %s='%s', using default %t\n", key, value, defaultValue)
	}
	return defaultValue
}
