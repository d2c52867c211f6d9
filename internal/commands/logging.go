package commands

import (
	"strings"

	"github.com/goliatone/go-jotdown/internal/logging"
	"github.com/goliatone/go-jotdown/pkg/interfaces"
)

// CommandLogger returns the logger for a group of command handlers.
//
// The logger is requested from provider under "jotdown.commands.<module>";
// a blank module falls back to "core". Every entry carries
// component=command and command_module=<module> so handler logs can be
// filtered apart from the note store. A nil provider yields a no-op logger.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	return logging.WithFields(logging.CommandsLogger(provider, name), map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
