package core

// InclusionMode tells the test runner how to read a fragment's class list.
type InclusionMode string

// InclusionMode values.
const (
	// Include runs exactly the listed classes.
	Include InclusionMode = "include"
	// Exclude runs everything except the listed classes.
	Exclude InclusionMode = "exclude"
)

// Bucket is one unit of scheduled test work, eventually mapped to one CI job.
type Bucket interface {
	// Name returns the display name of the bucket for the coverage.
	Name(coverage *TestCoverage) string
	// Description returns the description of the bucket for the coverage.
	Description(coverage *TestCoverage) string
	// TotalTime returns the recorded duration of the bucket in milliseconds.
	TotalTime() int
	// CreateJob materializes the bucket as the job at bucketIndex of the coverage.
	// A negative bucketIndex marks a job outside the bucket list, e.g. a deferred slow subproject.
	CreateJob(model *CIModel, stage *Stage, coverage *TestCoverage, bucketIndex int) *Job
}

// BucketProvider hands out the buckets computed for each coverage of the model.
type BucketProvider interface {
	// Buckets returns the buckets of the coverage in job order.
	Buckets(stage *Stage, coverage *TestCoverage) ([]Bucket, error)
	// CreateJobsFor materializes all buckets of the coverage.
	CreateJobsFor(stage *Stage, coverage *TestCoverage) ([]*Job, error)
	// CreateDeferredJobsFor returns the slow subproject jobs deferred into the stage.
	CreateDeferredJobsFor(stage *Stage) []*Job
}
