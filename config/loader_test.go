package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(t *testing.T, configFile string, args ...string) *cobra.Command {
	viper.Reset()
	t.Cleanup(viper.Reset)
	cmd := &cobra.Command{Use: "plan"}
	cmd.Flags().String("config", configFile, "")
	cmd.Flags().Int("bucket-number", constants.DefaultBucketNumber, "")
	cmd.Flags().String("output-format", "", "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newTestCommand(t, filepath.Join(t.TempDir(), "missing.yaml")))

	require.NoError(t, err)
	assert.Equal(t, constants.DefaultBucketNumber, cfg.Split.BucketNumber)
	assert.Equal(t, constants.DefaultMaxSubprojectsPerBucket, cfg.Split.MaxSubprojectsPerBucket)
	assert.Equal(t, constants.DefaultVersionMatrixSize, cfg.Split.VersionMatrixSize)
	assert.Equal(t, constants.HistorySourceFile, cfg.History.Source)
	assert.Equal(t, uint(constants.DefaultMaxRetries), cfg.History.MaxRetries)
	assert.Equal(t, time.Second, cfg.History.RetryDelay)
	assert.Equal(t, constants.OutputFormatJSON, cfg.Output.Format)
	assert.Equal(t, constants.DefaultBuildDir, cfg.Filter.Dir)
	assert.True(t, cfg.LogConfig.EnableConsole)
	assert.Same(t, GlobalConfig, cfg)
}

func TestLoadPrecedence(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "bk.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
data:
  model: pipeline/ci-model.yaml
  split:
    bucketNumber: 20
    maxSubprojectsPerBucket: 4
  output:
    format: yaml
`), 0o600))
	t.Setenv("BK_DATA_SPLIT_MAXSUBPROJECTSPERBUCKET", "6")

	cfg, err := Load(newTestCommand(t, configFile, "--bucket-number", "12"))

	require.NoError(t, err)
	assert.Equal(t, "pipeline/ci-model.yaml", cfg.Model)
	assert.Equal(t, 12, cfg.Split.BucketNumber)
	assert.Equal(t, 6, cfg.Split.MaxSubprojectsPerBucket)
	assert.Equal(t, constants.OutputFormatYAML, cfg.Output.Format)
}
