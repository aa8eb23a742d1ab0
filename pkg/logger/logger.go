package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. Development gets the pretty
// console writer, everything else structured JSON.
func Setup(env string) {
	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

type taskLogger struct{}

// TaskLogger adapts zerolog to the asynq logger interface.
func TaskLogger() *taskLogger {
	return &taskLogger{}
}

func (l *taskLogger) print(level zerolog.Level, args ...interface{}) {
	log.WithLevel(level).Msg(fmt.Sprint(args...))
}

func (l *taskLogger) Debug(args ...interface{}) {
	l.print(zerolog.DebugLevel, args...)
}

func (l *taskLogger) Info(args ...interface{}) {
	l.print(zerolog.InfoLevel, args...)
}

func (l *taskLogger) Warn(args ...interface{}) {
	l.print(zerolog.WarnLevel, args...)
}

func (l *taskLogger) Error(args ...interface{}) {
	l.print(zerolog.ErrorLevel, args...)
}

func (l *taskLogger) Fatal(args ...interface{}) {
	l.print(zerolog.FatalLevel, args...)
}
