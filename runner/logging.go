package runner

import (
	"os"
	"strings"

	"github.com/juju/errors"
	"github.com/op/go-logging"
)

// LogLevelEnv names the environment variable consulted when no level is
// passed to ConfigureLogging.
const LogLevelEnv = "ICONGEN_LOGLEVEL"

// ConfigureLogging sets the level for every icongen logger. level is a
// go-logging level name (DEBUG, INFO, WARNING, ...); an empty level falls
// back to $ICONGEN_LOGLEVEL, then INFO.
func ConfigureLogging(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnv)
	}
	if level == "" {
		level = "INFO"
	}
	lvl, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		return errors.NotValidf("log level %q", level)
	}
	logging.SetLevel(lvl, "")
	logging.SetFormatter(logging.MustStringFormatter("%{level:.1s}%{time:0102 15:04:05.999999} %{pid} %{shortfile}] %{message}"))
	return nil
}
