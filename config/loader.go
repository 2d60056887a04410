package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GlobalConfig stores the config instance for global use
var GlobalConfig *Config

// flagKeys maps command line flags to their config keys
var flagKeys = map[string]string{
	"verbose":                    "Data.Verbose",
	"log-file":                   "Data.LogFile",
	"env":                        "Data.Env",
	"model":                      "Data.Model",
	"history-source":             "Data.History.Source",
	"history-path":               "Data.History.Path",
	"history-blob":               "Data.History.BlobPath",
	"bucket-number":              "Data.Split.BucketNumber",
	"max-subprojects-per-bucket": "Data.Split.MaxSubprojectsPerBucket",
	"version-matrix-size":        "Data.Split.VersionMatrixSize",
	"output-dir":                 "Data.Output.Dir",
	"output-format":              "Data.Output.Format",
	"upload":                     "Data.Output.Upload",
	"filter-dir":                 "Data.Filter.Dir",
	"include-test-classes":       "Data.Filter.IncludeTestClasses",
	"exclude-test-classes":       "Data.Filter.ExcludeTestClasses",
	"only-test-major-version":    "Data.Filter.OnlyTestMajorVersion",
}

// Load loads config from command instance to predefined config variables
func Load(cmd *cobra.Command) (*Config, error) {
	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := viper.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	// default viper configs
	viper.SetEnvPrefix("BK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// set default configs
	setDefaultConfig()

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".bk")
		viper.AddConfigPath("./")
	}

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("Warning: No configuration file found. Proceeding with defaults")
	}

	return populateConfig(new(ConfigWrapper))
}

func populateConfig(wrapper *ConfigWrapper) (*Config, error) {
	if err := viper.Unmarshal(wrapper); err != nil {
		return nil, err
	}
	GlobalConfig = &wrapper.Config
	return GlobalConfig, nil
}
