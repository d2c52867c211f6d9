package runtimeconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNotesPatternInvalid = errors.New("jotdown config: notes pattern is invalid")
var ErrNotesWorkersInvalid = errors.New("jotdown config: notes workers must be zero or positive")
var ErrCacheCapacityInvalid = errors.New("jotdown config: cache capacity must be positive when the cache is enabled")
var ErrCacheTTLInvalid = errors.New("jotdown config: cache ttl must be positive when the cache is enabled")
var ErrLoggingProviderRequired = errors.New("jotdown config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("jotdown config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("jotdown config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("jotdown config: logging format is invalid")

// Config aggregates the settings of the note store, the parsed-note cache
// and logging.
type Config struct {
	// DataDir overrides the platform data directory. The jots directory is
	// created beneath it.
	DataDir string        `json:"data_dir"`
	Notes   NotesConfig   `json:"notes"`
	Cache   CacheConfig   `json:"cache"`
	Logging LoggingConfig `json:"logging"`
}

// NotesConfig controls note discovery and bulk loading.
type NotesConfig struct {
	// Dir is the notes directory relative to the jots directory.
	Dir       string `json:"dir"`
	Pattern   string `json:"pattern"`
	Recursive bool   `json:"recursive"`
	// Workers bounds concurrent loads; zero means one per CPU.
	Workers     int  `json:"workers"`
	Frontmatter bool `json:"frontmatter"`
}

// CacheConfig controls the parsed-note cache.
type CacheConfig struct {
	Enabled  bool     `json:"enabled"`
	Capacity int      `json:"capacity"`
	TTL      Duration `json:"ttl"`
}

// LoggingConfig selects the logging provider and its options.
type LoggingConfig struct {
	Provider  string   `json:"provider"`
	Level     string   `json:"level"`
	Format    string   `json:"format"`
	AddSource bool     `json:"add_source"`
	Focus     []string `json:"focus"`
}

// Duration is a time.Duration that reads JSON strings such as "5m".
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	*d = Duration(parsed)
	return nil
}

// DefaultConfig returns the settings used when no config file is supplied.
func DefaultConfig() Config {
	return Config{
		Notes: NotesConfig{
			Dir:         "notes",
			Pattern:     "*",
			Recursive:   false,
			Workers:     0,
			Frontmatter: true,
		},
		Cache: CacheConfig{
			Enabled:  true,
			Capacity: 1024,
			TTL:      Duration(10 * time.Minute),
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Notes.Pattern) != "" && !isValidPattern(cfg.Notes.Pattern) {
		return fmt.Errorf("%w: %s", ErrNotesPatternInvalid, cfg.Notes.Pattern)
	}
	if cfg.Notes.Workers < 0 {
		return ErrNotesWorkersInvalid
	}
	if cfg.Cache.Enabled {
		if cfg.Cache.Capacity <= 0 {
			return ErrCacheCapacityInvalid
		}
		if cfg.Cache.TTL <= 0 {
			return ErrCacheTTLInvalid
		}
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
