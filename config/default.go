package config

import (
	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/spf13/viper"
)

func setDefaultConfig() {
	viper.SetDefault("Data.LogConfig.EnableConsole", true)
	viper.SetDefault("Data.LogConfig.ConsoleJSONFormat", false)
	viper.SetDefault("Data.LogConfig.ConsoleLevel", "info")
	viper.SetDefault("Data.LogConfig.EnableFile", false)
	viper.SetDefault("Data.LogConfig.FileJSONFormat", true)
	viper.SetDefault("Data.LogConfig.FileLevel", "debug")
	viper.SetDefault("Data.LogConfig.FileLocation", "./bucketeer.log")
	viper.SetDefault("Data.Env", constants.Prod)
	viper.SetDefault("Data.Verbose", false)
	viper.SetDefault("Data.Model", "ci-model.yaml")
	viper.SetDefault("Data.History.Source", constants.HistorySourceFile)
	viper.SetDefault("Data.History.Path", "test-class-times.json")
	viper.SetDefault("Data.History.BlobPath", "test-class-times.json")
	viper.SetDefault("Data.History.MaxRetries", constants.DefaultMaxRetries)
	viper.SetDefault("Data.History.RetryDelay", constants.DefaultRetryDelay)
	viper.SetDefault("Data.History.MaxJitter", constants.DefaultMaxJitter)
	viper.SetDefault("Data.Azure.StorageAccountName", "")
	viper.SetDefault("Data.Azure.StorageAccessKey", "")
	viper.SetDefault("Data.Azure.HistoryContainerName", "")
	viper.SetDefault("Data.Azure.JobsContainerName", "")
	viper.SetDefault("Data.Split.BucketNumber", constants.DefaultBucketNumber)
	viper.SetDefault("Data.Split.MaxSubprojectsPerBucket", constants.DefaultMaxSubprojectsPerBucket)
	viper.SetDefault("Data.Split.VersionMatrixSize", constants.DefaultVersionMatrixSize)
	viper.SetDefault("Data.Output.Dir", "jobs")
	viper.SetDefault("Data.Output.Format", constants.OutputFormatJSON)
	viper.SetDefault("Data.Output.Upload", false)
	viper.SetDefault("Data.Output.BlobPrefix", "jobs")
	viper.SetDefault("Data.Filter.Dir", constants.DefaultBuildDir)
	viper.SetDefault("Data.Filter.IncludeTestClasses", false)
	viper.SetDefault("Data.Filter.ExcludeTestClasses", false)
	viper.SetDefault("Data.Filter.OnlyTestMajorVersion", "")
}
