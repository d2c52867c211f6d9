package jotdown

import "github.com/goliatone/go-jotdown/internal/runtimeconfig"

var (
	ErrNotesPatternInvalid     = runtimeconfig.ErrNotesPatternInvalid
	ErrNotesWorkersInvalid     = runtimeconfig.ErrNotesWorkersInvalid
	ErrCacheCapacityInvalid    = runtimeconfig.ErrCacheCapacityInvalid
	ErrCacheTTLInvalid         = runtimeconfig.ErrCacheTTLInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	NotesConfig   = runtimeconfig.NotesConfig
	CacheConfig   = runtimeconfig.CacheConfig
	LoggingConfig = runtimeconfig.LoggingConfig
	Duration      = runtimeconfig.Duration
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a JSON config file, validates it against the config
// schema and overlays it onto DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.LoadFile(path)
}
