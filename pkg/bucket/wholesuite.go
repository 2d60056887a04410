package bucket

import (
	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/LambdaTest/bucketeer/pkg/core"
)

// WholeSuiteBucket runs the complete suite of a coverage in one job.
type WholeSuiteBucket struct{}

// Name returns the display name of the bucket.
func (WholeSuiteBucket) Name(coverage *core.TestCoverage) string {
	return coverage.AsName()
}

// Description returns the description of the bucket.
func (WholeSuiteBucket) Description(coverage *core.TestCoverage) string {
	return coverage.AsName() + " for all subprojects"
}

// TotalTime is unknown for the whole suite.
func (WholeSuiteBucket) TotalTime() int {
	return 0
}

// CreateJob creates the job of the bucket.
func (b WholeSuiteBucket) CreateJob(model *core.CIModel, stage *core.Stage, coverage *core.TestCoverage, _ int) *core.Job {
	return newJob(coverage.AsConfigurationID(model, constants.WholeSuiteSuffix),
		b.Name(coverage), b.Description(coverage), stage, coverage, model, []string{}, 0)
}
