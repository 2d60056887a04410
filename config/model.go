package config

import (
	"time"

	"github.com/LambdaTest/bucketeer/pkg/lumber"
)

type (
	// ConfigWrapper is a wrapper for the config
	ConfigWrapper struct {
		Config `mapstructure:"data" json:"data"`
	}

	// Config the application's configuration
	Config struct {
		LogFile   string
		LogConfig lumber.LoggingConfig
		Env       string
		Verbose   bool
		// Model is the path of the CI model YAML file
		Model   string
		History HistoryConfig
		Azure   Azure
		Split   SplitConfig
		Output  OutputConfig
		Filter  FilterConfig
	}

	// HistoryConfig locates the recorded test class timings.
	HistoryConfig struct {
		// Source is either file or azure
		Source string
		// Path of the history file when Source is file
		Path string
		// BlobPath of the history blob when Source is azure
		BlobPath string
		// MaxRetries is the number of attempts to download the blob
		MaxRetries uint
		// RetryDelay is the base delay between attempts
		RetryDelay time.Duration
		// MaxJitter is the maximum random jitter added to the delay
		MaxJitter time.Duration
	}

	// Azure providers the storage configuration.
	Azure struct {
		// StorageAccountName azure storage account name
		StorageAccountName string
		// StorageAccessKey azure storage access key
		StorageAccessKey string
		// HistoryContainerName for reading the recorded test class timings
		HistoryContainerName string
		// JobsContainerName for storing the generated job definitions
		JobsContainerName string
	}

	// SplitConfig tunes the bucket split.
	SplitConfig struct {
		BucketNumber            int
		MaxSubprojectsPerBucket int
		VersionMatrixSize       int
	}

	// OutputConfig describes where generated jobs are written.
	OutputConfig struct {
		// Dir is the local directory jobs are written to
		Dir string
		// Format is either json or yaml
		Format string
		// Upload also stores the jobs in the azure jobs container
		Upload bool
		// BlobPrefix is the path prefix of uploaded jobs
		BlobPrefix string
	}

	// FilterConfig holds the runner side properties selecting the tests of a job.
	FilterConfig struct {
		// Dir containing the include or exclude filter file
		Dir                  string
		IncludeTestClasses   bool
		ExcludeTestClasses   bool
		OnlyTestMajorVersion string
	}
)
