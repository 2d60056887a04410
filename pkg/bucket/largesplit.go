package bucket

import (
	"fmt"

	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/LambdaTest/bucketeer/pkg/core"
	"gopkg.in/guregu/null.v4/zero"
)

// LargeSubprojectSplitBucket is one fragment of a subproject too heavy for a single bucket.
type LargeSubprojectSplitBucket struct {
	Subproject *core.Subproject
	// Number is the 1-based position of the fragment.
	Number int
	Mode   core.InclusionMode
	// Classes are run when Mode is include and skipped when it is exclude.
	Classes   []*core.TestClassTime
	totalTime int
}

// ID returns the short name of the fragment.
func (b *LargeSubprojectSplitBucket) ID() string {
	return fmt.Sprintf("%s_%d", b.Subproject.Name, b.Number)
}

// Name returns the display name of the bucket.
func (b *LargeSubprojectSplitBucket) Name(coverage *core.TestCoverage) string {
	return fmt.Sprintf("%s (%s)", coverage.AsName(), b.ID())
}

// Description returns the description of the bucket.
func (b *LargeSubprojectSplitBucket) Description(coverage *core.TestCoverage) string {
	return fmt.Sprintf("%s for %s", coverage.AsName(), b.Subproject.Name)
}

// TotalTime returns the recorded duration of the classes the fragment runs.
func (b *LargeSubprojectSplitBucket) TotalTime() int {
	return b.totalTime
}

// ExtraParameters returns the runner arguments selecting the fragment's classes.
func (b *LargeSubprojectSplitBucket) ExtraParameters() string {
	if b.Mode == core.Include {
		// unit tests only run in the last fragment
		return fmt.Sprintf("-P%s=true -x %s:%s", constants.IncludeTestClassesProperty, b.Subproject.Name, constants.UnitTestSourceSet)
	}
	return fmt.Sprintf("-P%s=true", constants.ExcludeTestClassesProperty)
}

// CreateJob creates the job of the bucket, including the step writing its filter file.
func (b *LargeSubprojectSplitBucket) CreateJob(model *core.CIModel, stage *core.Stage, coverage *core.TestCoverage, bucketIndex int) *core.Job {
	job := newJob(jobID(model, coverage, bucketIndex, b.ID()),
		b.Name(coverage), b.Description(coverage), stage, coverage, model,
		[]string{b.Subproject.Name}, b.totalTime)
	job.ExtraParameters = zero.StringFrom(b.ExtraParameters())
	job.PreBuildSteps = []core.Step{PrepareTestClassesStep(coverage.OS, b.Mode, b.Classes)}
	return job
}
