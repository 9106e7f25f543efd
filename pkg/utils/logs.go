package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"
)

var nodeLog bool
var serverLog bool

// Shared with the echo instance so API and compute logs look the same
var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *log.Logger {
	l := log.New("pagerank")
	l.SetOutput(w)
	l.SetHeader("${time_rfc3339} ${level}")
	l.SetLevel(log.INFO)
	return l
}

func InitLog(node, server bool) {
	nodeLog = node
	serverLog = server
}

func Logger() *log.Logger {
	return logger
}

func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

func ServerLog(format string, v ...any) {
	if serverLog {
		logger.Infof("Server: %s", fmt.Sprintf(format, v...))
	}
}

func NodeLog(role string, format string, v ...any) {
	if nodeLog {
		logger.Infof("Compute %s: %s", role, fmt.Sprintf(format, v...))
	}
}

// WarnLog is never gated: warnings are always printed
func WarnLog(role string, format string, v ...any) {
	logger.Warnf("%s: %s", role, fmt.Sprintf(format, v...))
}
