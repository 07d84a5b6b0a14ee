package cmd

import (
    "fmt"

    "github.com/harlequix/hamcode/version"
    "github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
    Use:   "version",
    Short: "Print build information",
    Run:   printVersion,
}

func init() {
    rootCmd.AddCommand(versionCmd)
}

func printVersion(cmd *cobra.Command, args []string) {
    fmt.Println("Build Date:", version.BuildDate)
    fmt.Println("Git Commit:", version.GitCommit)
    fmt.Println("Version:", version.Version)
    fmt.Println("Go Version:", version.GoVersion)
    fmt.Println("OS / Arch:", version.OsArch)
}
