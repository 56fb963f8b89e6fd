package debug

import (
	"os"
	"strconv"
)

// Config holds debug logging configuration.
type Config struct {
	// Enabled is the global debug on/off switch
	Enabled bool

	// Level is a zap level name ("debug", "info", ...)
	Level string

	// Format selects the zap encoding: "console" or "json"
	Format string
}

// Active is the global debug configuration
var Active Config

// Init initializes debug configuration from environment variables.
//
//	YATABL_DEBUG       enable debug logging (strconv.ParseBool syntax)
//	YATABL_LOG_LEVEL   zap level, default "debug"
//	YATABL_LOG_FORMAT  "console" (default) or "json"
func Init() {
	Active = Config{
		Enabled: parseBool(os.Getenv("YATABL_DEBUG"), false),
		Level:   getEnvOrDefault("YATABL_LOG_LEVEL", "debug"),
		Format:  getEnvOrDefault("YATABL_LOG_FORMAT", "console"),
	}
}

func parseBool(s string, defaultVal bool) bool {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(s)
	if err != nil {
		return defaultVal
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
