package version

import (
    "fmt"
    "runtime"
)

var (
    Version   = "dev"
    GitCommit = ""
    BuildDate = ""
    GoVersion = runtime.Version()
    OsArch    = fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
)
