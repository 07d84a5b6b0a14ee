package log

import (
    log "github.com/sirupsen/logrus"
    "os"
)

type Logger struct {
    *log.Entry
}

var level log.Level = log.WarnLevel
var loggers []*log.Logger

// SetLevel changes the level for every logger handed out so far and for
// the ones still to come.
func SetLevel(name string) {
    parsed, err := log.ParseLevel(name)
    if err != nil {
        parsed = log.WarnLevel
    }
    level = parsed
    for _, base := range loggers {
        base.SetLevel(parsed)
    }
}

func NewLogger(module string) *Logger {
    base := log.New()

    base.SetFormatter(&log.TextFormatter{
        DisableColors:    false,
        DisableTimestamp: false,
    })

    base.SetOutput(os.Stdout)
    base.SetLevel(level)
    loggers = append(loggers, base)

    baselogger := base.WithFields(
        log.Fields{
            "name": module,
        })
    return &Logger{baselogger}
}
