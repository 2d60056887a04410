package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/LambdaTest/bucketeer/pkg/core"
	"github.com/fatih/color"
)

// printPlanSummary prints one line per coverage with its bucket count and the spread of
// the estimated bucket durations.
func printPlanSummary(w io.Writer, model *core.CIModel, provider core.BucketProvider, jobCount int) error {
	for i := range model.Stages {
		stage := &model.Stages[i]
		fmt.Fprintf(w, "%s\n", color.CyanString("Stage %s", stage.Name))
		for j := range stage.FunctionalTests {
			coverage := &stage.FunctionalTests[j]
			buckets, err := provider.Buckets(stage, coverage)
			if err != nil {
				return err
			}
			total, shortest, longest := 0, 0, 0
			for k, b := range buckets {
				d := b.TotalTime()
				total += d
				if k == 0 || d < shortest {
					shortest = d
				}
				if d > longest {
					longest = d
				}
			}
			line := fmt.Sprintf("  %-45s %3d buckets", coverage.AsID(model), len(buckets))
			if total == 0 {
				fmt.Fprintf(w, "%s %s\n", line, color.YellowString("no timings"))
				continue
			}
			fmt.Fprintf(w, "%s %s\n", line, color.GreenString("total %s, bucket %s - %s",
				duration(total), duration(shortest), duration(longest)))
		}
		if deferred := provider.CreateDeferredJobsFor(stage); len(deferred) > 0 {
			fmt.Fprintf(w, "  %s\n", color.YellowString("%d deferred slow subproject jobs", len(deferred)))
		}
	}
	color.New(color.Bold).Fprintf(w, "%d jobs\n", jobCount)
	return nil
}

func duration(ms int) string {
	return (time.Duration(ms) * time.Millisecond).Round(time.Second).String()
}
