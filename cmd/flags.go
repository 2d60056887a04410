package cmd

import (
	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/spf13/cobra"
)

// AttachCLIFlags attaches the flags shared by all commands
func AttachCLIFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path, defaults to ./.bk.{json,yaml}")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logs")
	rootCmd.PersistentFlags().String("log-file", "", "directory to write the log file to")
	rootCmd.PersistentFlags().String("env", constants.Prod, "environment, one of dev, stage or prod")
}

func attachPlanFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("model", "m", "", "path of the CI model YAML file")
	cmd.Flags().String("history-source", "", "where test class timings are read from, file or azure")
	cmd.Flags().String("history-path", "", "path of the test class timings file")
	cmd.Flags().String("history-blob", "", "blob path of the test class timings in the azure history container")
	cmd.Flags().Int("bucket-number", constants.DefaultBucketNumber, "number of buckets per coverage")
	cmd.Flags().Int("max-subprojects-per-bucket", constants.DefaultMaxSubprojectsPerBucket, "maximum number of subprojects in one bucket")
	cmd.Flags().Int("version-matrix-size", constants.DefaultVersionMatrixSize, "number of major versions cross version coverages run against")
	cmd.Flags().StringP("output-dir", "o", "", "directory the job definitions are written to")
	cmd.Flags().String("output-format", "", "format of the job definitions, json or yaml")
	cmd.Flags().Bool("upload", false, "also upload the job definitions to the azure jobs container")
}

func attachFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("filter-dir", "", "directory holding the filter file")
	cmd.Flags().Bool("include-test-classes", false, "run only the classes of the include filter file")
	cmd.Flags().Bool("exclude-test-classes", false, "run all classes except those of the exclude filter file")
	cmd.Flags().String("only-test-major-version", "", "run only the cross version tests of this major version")
}
