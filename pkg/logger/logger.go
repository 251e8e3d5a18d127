package logger

import (
	"os"

	"github.com/op/go-logging"
)

// defaultLogFormat defines the format used for log output.
const defaultLogFormat = "%{color}%{time:2006/01/02 15:04:05} %{level:-8s} %{module}%{color:reset}: %{message}"

// NewLogger provides a new logger instance for the given module at the given
// level. Unknown levels fall back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", 0)

	fm := logging.MustStringFormatter(defaultLogFormat)
	fmtBackend := logging.NewBackendFormatter(backend, fm)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	lvlBackend := logging.AddModuleLevel(fmtBackend)
	lvlBackend.SetLevel(lvl, "")

	logging.SetBackend(lvlBackend)
	return logging.MustGetLogger(module)
}
