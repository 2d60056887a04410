package cmd

import (
	"os"
	"strings"

	"github.com/LambdaTest/bucketeer/pkg/testfilter"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

func filterCommand() *cobra.Command {
	filterCmd := &cobra.Command{
		Use:   "filter TASK[:SOURCESET]...",
		Short: "Print how the test tasks of this job are filtered",
		Long: `filter reads the job properties and its include or exclude filter file and prints the
configuration of every given test task. The source set defaults to the task name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFilter,
	}
	attachFilterFlags(filterCmd)
	return filterCmd
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	provider, err := testfilter.NewProvider(testfilter.Options{
		Dir:                  cfg.Filter.Dir,
		IncludeTestClasses:   cfg.Filter.IncludeTestClasses,
		ExcludeTestClasses:   cfg.Filter.ExcludeTestClasses,
		OnlyTestMajorVersion: cfg.Filter.OnlyTestMajorVersion,
	}, os.ReadFile, logger)
	if err != nil {
		logger.Errorf("failed to create test filter, error: %v", err)
		return err
	}
	tasks := make([]*testfilter.TestTask, 0, len(args))
	for _, arg := range args {
		name, sourceSet, ok := strings.Cut(arg, ":")
		if !ok {
			sourceSet = name
		}
		task := testfilter.NewTestTask(name, sourceSet)
		if err := provider.Configure(task); err != nil {
			logger.Errorf("failed to configure task %s, error: %v", name, err)
			return err
		}
		tasks = append(tasks, task)
	}
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	out, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
