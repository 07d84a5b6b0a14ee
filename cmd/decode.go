package cmd

import (
    "fmt"
    "io/ioutil"
    "os"
    "strings"

    "github.com/harlequix/hamcode/hamcode"
    "github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
    Use:   "decode [bits]",
    Short: "Decode a Hamming bit string back to text",
    Long: `Decode a string of '0'/'1' characters produced by encode with the
same block length. Single-bit errors per block are corrected; blocks with
heavier damage pass through unmodified and are listed in the report.`,
    Run: decode,
}

func init() {
    rootCmd.AddCommand(decodeCmd)
}

func decode(cmd *cobra.Command, args []string) {
    decoder, err := hamcode.NewDecoder()
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
    encoded := strings.Join(args, "")
    if encoded == "" {
        raw, _ := ioutil.ReadAll(os.Stdin)
        encoded = strings.TrimSpace(string(raw))
    }
    text, reports, err := decoder.Decode(encoded)
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
    for _, report := range reports {
        if report.Status != hamcode.StatusClean {
            fmt.Fprintln(os.Stderr, report)
        }
    }
    fmt.Println(text)
}
