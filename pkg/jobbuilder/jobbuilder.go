// Package jobbuilder materializes the buckets of a CI model into job definitions.
package jobbuilder

import (
	"github.com/LambdaTest/bucketeer/pkg/core"
	errs "github.com/LambdaTest/bucketeer/pkg/errors"
	"github.com/LambdaTest/bucketeer/pkg/lumber"
	"github.com/pkg/errors"
)

type jobBuilder struct {
	model  *core.CIModel
	logger lumber.Logger
}

// New returns a new JobBuilder for the model.
func New(model *core.CIModel, logger lumber.Logger) core.JobBuilder {
	return &jobBuilder{model: model, logger: logger}
}

// CreateJobs creates the job of every bucket, bucket order is kept
func (j *jobBuilder) CreateJobs(stage *core.Stage, coverage *core.TestCoverage, buckets []core.Bucket) []*core.Job {
	jobs := make([]*core.Job, 0, len(buckets))
	for i, b := range buckets {
		jobs = append(jobs, b.CreateJob(j.model, stage, coverage, i))
	}
	return jobs
}

// CreateModelJobs creates the jobs of all stages in pipeline order
func (j *jobBuilder) CreateModelJobs(provider core.BucketProvider) ([]*core.Job, error) {
	var jobs []*core.Job
	seen := make(map[string]struct{})
	add := func(stageJobs []*core.Job) error {
		for _, job := range stageJobs {
			if _, ok := seen[job.ID]; ok {
				return errors.Wrapf(errs.ErrDuplicateJobID, "job %s", job.ID)
			}
			seen[job.ID] = struct{}{}
			jobs = append(jobs, job)
		}
		return nil
	}
	for i := range j.model.Stages {
		stage := &j.model.Stages[i]
		for k := range stage.FunctionalTests {
			coverage := &stage.FunctionalTests[k]
			coverageJobs, err := provider.CreateJobsFor(stage, coverage)
			if err != nil {
				j.logger.Errorf("failed to create jobs for stage %s, coverage %s, error: %v",
					stage.Name, coverage.AsID(j.model), err)
				return nil, err
			}
			if err := add(coverageJobs); err != nil {
				j.logger.Errorf("failed to add jobs of coverage %s, error: %v", coverage.AsID(j.model), err)
				return nil, err
			}
		}
		deferred := provider.CreateDeferredJobsFor(stage)
		if len(deferred) > 0 {
			j.logger.Infof("deferred %d slow subproject jobs into stage %s", len(deferred), stage.Name)
		}
		if err := add(deferred); err != nil {
			j.logger.Errorf("failed to add deferred jobs of stage %s, error: %v", stage.Name, err)
			return nil, err
		}
	}
	return jobs, nil
}
