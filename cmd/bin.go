package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/LambdaTest/bucketeer/config"
	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/LambdaTest/bucketeer/pkg/lumber"
	"github.com/spf13/cobra"
)

// RootCommand will setup and return the root command
func RootCommand() *cobra.Command {
	rootCmd := cobra.Command{
		Use: constants.BinaryName,
		Long: `bucketeer splits the functional test coverages of a CI pipeline into buckets of similar duration
using recorded test class timings, and writes one CI job definition per bucket.`,
		Version:      constants.BinaryVersion,
		SilenceUsage: true,
	}

	// define flags used for this command
	AttachCLIFlags(&rootCmd)

	rootCmd.AddCommand(planCommand(), filterCommand())
	return &rootCmd
}

// setup loads the config and creates the logger of a command
func setup(cmd *cobra.Command) (*config.Config, lumber.Logger, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		fmt.Printf("Failed to load config: %v", err)
		return nil, nil, err
	}

	// patch logconfig file location with root level log file location
	if cfg.LogFile != "" {
		cfg.LogConfig.EnableFile = true
		cfg.LogConfig.FileLocation = filepath.Join(cfg.LogFile, constants.LogFileName)
	}

	// You can also use logrus implementation
	// by using lumber.InstanceLogrusLogger
	logger, err := lumber.NewLogger(cfg.LogConfig, cfg.Verbose, lumber.InstanceZapLogger)
	if err != nil {
		log.Printf("could not instantiate logger %s", err.Error())
		return nil, nil, err
	}
	return cfg, logger, nil
}
