package bucket

import (
	"fmt"

	"github.com/LambdaTest/bucketeer/pkg/core"
)

// SubprojectBucket runs all tests of one subproject.
type SubprojectBucket struct {
	Subproject *core.Subproject
	totalTime  int
}

// NewSubprojectBucket returns the bucket running the whole subproject.
func NewSubprojectBucket(subproject *core.Subproject, totalTime int) *SubprojectBucket {
	return &SubprojectBucket{Subproject: subproject, totalTime: totalTime}
}

// Name returns the display name of the bucket.
func (b *SubprojectBucket) Name(coverage *core.TestCoverage) string {
	return fmt.Sprintf("%s (%s)", coverage.AsName(), b.Subproject.Name)
}

// Description returns the description of the bucket.
func (b *SubprojectBucket) Description(coverage *core.TestCoverage) string {
	return fmt.Sprintf("%s for %s", coverage.AsName(), b.Subproject.Name)
}

// TotalTime returns the recorded duration of the subproject.
func (b *SubprojectBucket) TotalTime() int {
	return b.totalTime
}

// CreateJob creates the job of the bucket.
func (b *SubprojectBucket) CreateJob(model *core.CIModel, stage *core.Stage, coverage *core.TestCoverage, bucketIndex int) *core.Job {
	return newJob(jobID(model, coverage, bucketIndex, b.Subproject.Name),
		b.Name(coverage), b.Description(coverage), stage, coverage, model,
		[]string{b.Subproject.Name}, b.totalTime)
}
