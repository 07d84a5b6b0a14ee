package log

import (
    "github.com/rifflock/lfshook"
    log "github.com/sirupsen/logrus"
)

// AddReportFile tees corrected/uncorrectable block diagnostics into files
// next to path, JSON formatted so they can be grepped per level.
func AddReportFile(logger *Logger, path string) {
    pathMap := lfshook.PathMap{
        log.InfoLevel: path + ".corrected",
        log.WarnLevel: path + ".uncorrectable",
    }
    hook := lfshook.NewHook(
        pathMap,
        &log.JSONFormatter{
            TimestampFormat: "Jan _2 2006 15:04:05.000000",
        },
    )
    logger.Logger.Hooks.Add(hook)
}
