package bucket

import (
	"fmt"

	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/LambdaTest/bucketeer/pkg/core"
	"gopkg.in/guregu/null.v4/zero"
)

// VersionBucket runs the cross version tests against one major version.
type VersionBucket struct {
	MajorVersion int
}

// VersionMatrix returns one bucket per major version, 1 to size.
func VersionMatrix(size int) []core.Bucket {
	buckets := make([]core.Bucket, 0, size)
	for v := 1; v <= size; v++ {
		buckets = append(buckets, &VersionBucket{MajorVersion: v})
	}
	return buckets
}

// Name returns the display name of the bucket.
func (b *VersionBucket) Name(coverage *core.TestCoverage) string {
	return fmt.Sprintf("%s (version %d)", coverage.AsName(), b.MajorVersion)
}

// Description returns the description of the bucket.
func (b *VersionBucket) Description(coverage *core.TestCoverage) string {
	return fmt.Sprintf("%s for version %d", coverage.AsName(), b.MajorVersion)
}

// TotalTime is unknown for version buckets.
func (b *VersionBucket) TotalTime() int {
	return 0
}

// CreateJob creates the job of the bucket.
func (b *VersionBucket) CreateJob(model *core.CIModel, stage *core.Stage, coverage *core.TestCoverage, _ int) *core.Job {
	job := newJob(coverage.AsConfigurationID(model, fmt.Sprintf("%s%d", constants.VersionBucketPrefix, b.MajorVersion)),
		b.Name(coverage), b.Description(coverage), stage, coverage, model, []string{}, 0)
	job.ExtraParameters = zero.StringFrom(fmt.Sprintf("-P%s=%d", constants.OnlyTestMajorVersionProperty, b.MajorVersion))
	return job
}
