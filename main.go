package main

import (
    "github.com/harlequix/hamcode/cmd"
)

func main() {
    cmd.Execute()
}
