package logging

import (
	"io"
	"log/slog"
	"os"
)

func getLogLevel() (lvl slog.Level) {
	logLevelOS, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return lvl
	}
	err := lvl.UnmarshalText([]byte(logLevelOS))
	if err != nil {
		slog.Warn("Invalid log level", "environ_value", logLevelOS)
	}
	return
}

var EnvironmentLvl slog.Level = -2147483648

//Configure logging for SDK consumers that do not bring their own slog setup.
//Pass EnvironmentLvl to take the level from the LOG_LEVEL environment variable
//and nil as sink to log to stdout.
func InitializeLogging(lvl slog.Level, sink io.Writer) {
	if lvl == EnvironmentLvl {
		lvl = getLogLevel()
	}
	options := slog.HandlerOptions{
		Level: lvl,
	}
	if sink == nil {
		sink = os.Stdout
	}
	logger := slog.New(NewJSONRequestCtxHandler(sink, &options))
	slog.SetDefault(logger)
}
