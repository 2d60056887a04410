package bucket

import (
	"fmt"
	"strings"

	"github.com/LambdaTest/bucketeer/pkg/core"
)

// SmallSubprojectBucket runs several small subprojects in one job.
type SmallSubprojectBucket struct {
	Subprojects []*core.Subproject
	totalTime   int
}

// NewSmallSubprojectBucket aggregates the subprojects into one bucket.
func NewSmallSubprojectBucket(items []*core.SubprojectClassTimes) core.Bucket {
	b := &SmallSubprojectBucket{Subprojects: make([]*core.Subproject, 0, len(items))}
	for _, item := range items {
		b.Subprojects = append(b.Subprojects, item.Subproject)
		b.totalTime += item.Weight()
	}
	return b
}

func (b *SmallSubprojectBucket) names() []string {
	names := make([]string, 0, len(b.Subprojects))
	for _, s := range b.Subprojects {
		names = append(names, s.Name)
	}
	return names
}

// Name returns the display name of the bucket.
func (b *SmallSubprojectBucket) Name(coverage *core.TestCoverage) string {
	return fmt.Sprintf("%s (%s)", coverage.AsName(), strings.Join(b.names(), ","))
}

// Description returns the description of the bucket.
func (b *SmallSubprojectBucket) Description(coverage *core.TestCoverage) string {
	return fmt.Sprintf("%s for %s", coverage.AsName(), strings.Join(b.names(), ", "))
}

// TotalTime returns the summed duration of all subprojects.
func (b *SmallSubprojectBucket) TotalTime() int {
	return b.totalTime
}

// CreateJob creates the job of the bucket.
func (b *SmallSubprojectBucket) CreateJob(model *core.CIModel, stage *core.Stage, coverage *core.TestCoverage, bucketIndex int) *core.Job {
	names := b.names()
	return newJob(jobID(model, coverage, bucketIndex, strings.Join(names, "_")),
		b.Name(coverage), b.Description(coverage), stage, coverage, model, names, b.totalTime)
}
