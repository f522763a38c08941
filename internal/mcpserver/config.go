package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/casekit/casing"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Conversion defaults.
	DefaultConvention casing.Convention
	FoldAccents       bool

	// Input limits.
	MaxInputSize int
	MaxBatchSize int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CASEKIT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultConvention: envConvention("CASEKIT_DEFAULT_CONVENTION", casing.Camel),
		FoldAccents:       envBool("CASEKIT_FOLD_ACCENTS", false),
		MaxInputSize:      envInt("CASEKIT_MAX_INPUT_SIZE", 1024*1024),
		MaxBatchSize:      envInt("CASEKIT_MAX_BATCH_SIZE", 1000),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envConvention(key string, fallback casing.Convention) casing.Convention {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	c, err := casing.ParseConvention(v)
	if err != nil {
		slog.Warn("invalid convention env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return c
}
