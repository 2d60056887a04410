// Package bucket implements the bucket variants a coverage is split into and turns each
// of them into a CI job.
package bucket

import (
	"strconv"

	"github.com/LambdaTest/bucketeer/pkg/core"
	"github.com/LambdaTest/bucketeer/pkg/utils"
)

// jobID returns the id of the job at bucketIndex of the coverage, or the id named after
// fallback for jobs outside the bucket list.
func jobID(model *core.CIModel, coverage *core.TestCoverage, bucketIndex int, fallback string) string {
	if bucketIndex < 0 {
		return coverage.AsConfigurationID(model, fallback)
	}
	return coverage.AsConfigurationID(model, bucketSuffix(bucketIndex))
}

func bucketSuffix(bucketIndex int) string {
	return "bucket" + strconv.Itoa(bucketIndex+1)
}

func newJob(id, name, description string, stage *core.Stage, coverage *core.TestCoverage,
	model *core.CIModel, subprojects []string, totalTime int) *core.Job {
	return &core.Job{
		ID:                  id,
		UUID:                utils.GenerateStableUUID(id),
		Name:                name,
		Description:         description,
		CoverageID:          coverage.AsID(model),
		Stage:               stage.Name,
		OS:                  coverage.OS,
		Subprojects:         subprojects,
		EstimatedDurationMs: totalTime,
	}
}
