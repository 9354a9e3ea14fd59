// Package config loads the settings of mazter from the environment, with an
// optional .env file.
package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the settings read from the environment
type Config struct {
	DataDir    string        // Directory of the achievements file
	LogFile    string        // File receiving the logs, empty to discard them while playing
	Locale     string        // Language of the messages, eg fr_FR
	LocalesDir string        // Directory holding <locale>/LC_MESSAGES/default.po
	Tick       time.Duration // Delay between two automatic moves
	Sound      bool          // Play sound cues
	Seed       int64         // Random seed, 0 for a time based one
}

// Load reads the .env file if there's one, then the environment
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[MAZTER] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return Config{
		DataDir:    getEnvWithDefault("MAZTER_DATA_DIR", defaultDataDir()),
		LogFile:    getEnvWithDefault("MAZTER_LOG", ""),
		Locale:     getEnvWithDefault("MAZTER_LOCALE", "en_US"),
		LocalesDir: getEnvWithDefault("MAZTER_LOCALES_DIR", "locales"),
		Tick:       time.Duration(getEnvAsInt("MAZTER_TICK_MS", 140)) * time.Millisecond,
		Sound:      getEnvAsBool("MAZTER_SOUND", false),
		Seed:       int64(getEnvAsInt("MAZTER_SEED", 0)),
	}
}

// AchievementsPath returns the path of the achievements file
func (c Config) AchievementsPath(fileName string) string {
	return filepath.Join(c.DataDir, fileName)
}

// SeedOrNow returns the configured seed, or the current time when unset
func (c Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// SetupLog sends the standard logger to the configured file. Without one,
// logs go to fallback, which may be nil to discard them. The returned
// function closes the file.
func (c Config) SetupLog(fallback io.Writer) (func(), error) {
	if c.LogFile == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		log.SetOutput(fallback)
		return func() {}, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return func() {}, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".mazter"
	}
	return filepath.Join(dir, "mazter")
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, or the default when unset or invalid.
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[MAZTER] [WARN] Environment variable %s must be an integer: %v", key, err)
		return defaultValue
	}
	return n
}

// getEnvAsBool retrieves a boolean environment variable, or the default when unset or invalid.
func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("[MAZTER] [WARN] Environment variable %s must be a boolean: %v", key, err)
		return defaultValue
	}
	return b
}
