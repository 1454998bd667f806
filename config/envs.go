package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP                string // Host IP for the server
	RESTPort              int    // Port for the REST API
	GinMode               string // Mode for the Gin framework (e.g., release, debug, test)
	LogLevel              string // Minimum log level (debug, info, warn, error)
	AboutAuthor           string // Text served by the about endpoint
	MazeWidth             int    // Width of generated mazes, boundary included
	MazeHeight            int    // Height of generated mazes, boundary included
	CheeseGoal            int    // Cheeses needed to win
	MaxGenerationAttempts int    // Maze generation retries before giving up
	MaxSessions           int    // Maximum number of concurrent games
	RandomSeed            int64  // Seed for maze and cat randomness; 0 seeds from the clock
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:                getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:              getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:               getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:              getEnvWithDefault("LOG_LEVEL", "info"),
		AboutAuthor:           getEnvWithDefault("ABOUT_AUTHOR", "Cat and Mouse maintainers"),
		MazeWidth:             getEnvAsIntWithDefault("MAZE_WIDTH", 20),
		MazeHeight:            getEnvAsIntWithDefault("MAZE_HEIGHT", 15),
		CheeseGoal:            getEnvAsIntWithDefault("CHEESE_GOAL", 5),
		MaxGenerationAttempts: getEnvAsIntWithDefault("MAX_GENERATION_ATTEMPTS", 10000),
		MaxSessions:           getEnvAsIntWithDefault("MAX_SESSIONS", 256),
		RandomSeed:            int64(getEnvAsIntWithDefault("RANDOM_SEED", 0)),
	}
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, or the default if unset.
// A value that cannot be parsed is fatal.
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
