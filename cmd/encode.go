package cmd

import (
    "fmt"
    "io/ioutil"
    "os"
    "strings"

    "github.com/harlequix/hamcode/hamcode"
    "github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
    Use:   "encode [text]",
    Short: "Encode text into a Hamming bit string",
    Long: `Encode text into a string of '0'/'1' characters. Text comes from
the arguments, or from stdin when no argument is given.`,
    Run: encode,
}

func init() {
    rootCmd.AddCommand(encodeCmd)
}

func encode(cmd *cobra.Command, args []string) {
    encoder, err := hamcode.NewEncoder()
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
    text := strings.Join(args, " ")
    if text == "" {
        raw, _ := ioutil.ReadAll(os.Stdin)
        text = string(raw)
    }
    out, err := encoder.Encode(text)
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
    fmt.Println(out)
}
