// SPDX-License-Identifier: EPL-2.0

package umpclip

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// SetLogLevel configures the logging verbosity of the library.
// Valid levels: "debug", "info", "warn", "error", "disabled".
// The codecs only log at debug level: decode progress and skipped events.
func SetLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "disabled", "none", "off":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		return fmt.Errorf("invalid log level %q: must be one of: debug, info, warn, error, disabled", level)
	}

	return nil
}
