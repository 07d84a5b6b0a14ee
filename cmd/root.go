package cmd

import (
    "fmt"
    "os"

    "github.com/harlequix/hamcode/hamcode"
    "github.com/spf13/cobra"
    "github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
    Use:   "hamcode",
    Short: "Hamming encoder/decoder for 8-bit text",
    Long: `hamcode turns text into Hamming-protected bit strings and back,
correcting a single flipped bit per block on the way. Both sides must use
the same block length.`,
}

func Execute() {
    if err := rootCmd.Execute(); err != nil {
        fmt.Println(err)
        os.Exit(1)
    }
}

func init() {
    cobra.OnInitialize(initConfig)
    rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
    rootCmd.PersistentFlags().Int("block-length", 8, "data bits per block")
    viper.BindPFlag("BlockLength", rootCmd.PersistentFlags().Lookup("block-length"))
}

func initConfig() {
    hamcode.SetConfig(cfgFile)
}
