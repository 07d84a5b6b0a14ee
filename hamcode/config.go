package hamcode

import (
    "fmt"

    log "github.com/harlequix/hamcode/log"
    "github.com/spf13/viper"
)

type Config struct {
    BlockLength int
    LogLevel    string
    ReportFile  string
}

func init() {
    viper.SetDefault("BlockLength", 8)
    viper.SetDefault("LogLevel", "warn")
    viper.SetDefault("ReportFile", "")
}

// SetConfig points viper at a config file. Encoder and decoder sides have
// to agree on BlockLength out-of-band, this is the place to pin it.
func SetConfig(configFile string) {
    if configFile != "" {
        viper.SetConfigFile(configFile)
        err := viper.ReadInConfig()
        if err != nil {
            panic(fmt.Errorf("Fatal error config file: %s \n", err))
        }
    }
}

func loadConfig() Config {
    var config Config
    err := viper.Unmarshal(&config)
    if err != nil {
        fmt.Println(err)
    }
    log.SetLevel(config.LogLevel)
    return config
}
