package logging

import (
	"strings"

	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
)

// Configure sets the default sigolo log level by name (info, debug or trace). Info logs in
// the plain format. Warnings get a format function on every level since sigolo doesn't
// install one for them by default.
func Configure(level string) error {
	switch strings.ToLower(level) {
	case "info":
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		return nil
	case "debug":
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	case "trace":
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	default:
		return errors.Errorf("Unknown logging level '%s'", level)
	}

	sigolo.SetDefaultFormatFunction(sigolo.LOG_WARN, sigolo.LogDefaultStatic)
	return nil
}
