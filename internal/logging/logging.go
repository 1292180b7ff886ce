// Package logging configures commonlog for jscope and hands out named loggers.
package logging

import (
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// Prefix is prepended to every logger name.
const Prefix = "jscope"

// Configure sets the process-wide verbosity; higher values log more, and 2
// or above includes debug messages. An empty path logs to stderr.
func Configure(verbosity int, path string) {
	if path == "" {
		commonlog.Configure(verbosity, nil)
		return
	}
	commonlog.Configure(verbosity, &path)
}

// GetLogger returns the logger for a jscope subsystem, e.g. "resolver".
func GetLogger(name string) commonlog.Logger {
	return commonlog.GetLogger(Prefix + "." + name)
}
