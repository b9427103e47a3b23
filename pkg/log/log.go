package log

import (
	stdlog "log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// GetLogger returns a stdr.Logger that implements the logr.Logger interface
// and sets the verbosity of the returned logger.
// Set v to 0 for info level messages, 1 for debug messages and 2 for trace
// level messages. Any other verbosity level will default to 0.
func GetLogger(v int) logr.Logger {
	logger := stdr.New(stdlog.New(os.Stderr, "", stdlog.LstdFlags)).WithName("hashdict")
	if v > 2 || v < 0 {
		v = 0
		logger.Info("Invalid verbosity, setting logger to display info level messages only.")
	}
	stdr.SetVerbosity(v)

	return logger
}
