// Package bucketprovider decides how every coverage of the CI model is split into buckets.
package bucketprovider

import (
	"github.com/LambdaTest/bucketeer/pkg/bucket"
	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/LambdaTest/bucketeer/pkg/core"
	errs "github.com/LambdaTest/bucketeer/pkg/errors"
	"github.com/LambdaTest/bucketeer/pkg/lumber"
)

// Options tunes how coverages are split.
type Options struct {
	// BucketNumber is the number of buckets a weighted coverage is split into.
	BucketNumber int
	// MaxSubprojectsPerBucket caps how many subprojects share one bucket.
	MaxSubprojectsPerBucket int
	// VersionMatrixSize is the number of major versions cross version coverages run against.
	VersionMatrixSize int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		BucketNumber:            constants.DefaultBucketNumber,
		MaxSubprojectsPerBucket: constants.DefaultMaxSubprojectsPerBucket,
		VersionMatrixSize:       constants.DefaultVersionMatrixSize,
	}
}

type provider struct {
	model      *core.CIModel
	jobBuilder core.JobBuilder
	logger     lumber.Logger
	buckets    map[string][]core.Bucket

	wholeSuite    bucketStrategy
	versionMatrix bucketStrategy
	history       bucketStrategy
}

// New computes the buckets of every coverage of the model once and returns the provider
// handing them out.
func New(model *core.CIModel,
	classTimes core.BuildProjectClassTimes,
	opts Options,
	jobBuilder core.JobBuilder,
	logger lumber.Logger) (core.BucketProvider, error) {
	if opts.BucketNumber < 1 {
		return nil, errs.ErrInvalidBucketNumber
	}
	if opts.MaxSubprojectsPerBucket < 1 {
		return nil, errs.ErrInvalidMaxItems
	}
	p := &provider{
		model:         model,
		jobBuilder:    jobBuilder,
		logger:        logger,
		buckets:       make(map[string][]core.Bucket),
		wholeSuite:    wholeSuiteStrategy{},
		versionMatrix: versionMatrixStrategy{size: opts.VersionMatrixSize},
		history: &historyStrategy{
			model:      model,
			classTimes: classTimes,
			opts:       opts,
			logger:     logger,
		},
	}
	for i := range model.Stages {
		stage := &model.Stages[i]
		for j := range stage.FunctionalTests {
			coverage := &stage.FunctionalTests[j]
			buckets, err := p.strategyFor(coverage).buckets(stage, coverage)
			if err != nil {
				logger.Errorf("failed to create buckets for stage %s, coverage %s, error: %v",
					stage.Name, coverage.AsID(model), err)
				return nil, err
			}
			p.buckets[p.key(stage, coverage)] = buckets
		}
	}
	return p, nil
}

func (p *provider) strategyFor(coverage *core.TestCoverage) bucketStrategy {
	switch {
	case coverage.TestType == core.TestTypeAllVersionsIntegMultiVersion:
		return p.wholeSuite
	case coverage.TestType.IsCrossVersion():
		return p.versionMatrix
	default:
		return p.history
	}
}

func (p *provider) key(stage *core.Stage, coverage *core.TestCoverage) string {
	return stage.Name + "/" + coverage.AsID(p.model)
}

func (p *provider) Buckets(stage *core.Stage, coverage *core.TestCoverage) ([]core.Bucket, error) {
	buckets, ok := p.buckets[p.key(stage, coverage)]
	if !ok {
		return nil, errs.ErrUnknownCoverage
	}
	return buckets, nil
}

func (p *provider) CreateJobsFor(stage *core.Stage, coverage *core.TestCoverage) ([]*core.Job, error) {
	buckets, err := p.Buckets(stage, coverage)
	if err != nil {
		return nil, err
	}
	return p.jobBuilder.CreateJobs(stage, coverage, buckets), nil
}

// CreateDeferredJobsFor returns, for the first stage running slow subprojects, one job per
// slow subproject and coverage of every earlier stage.
func (p *provider) CreateDeferredJobsFor(stage *core.Stage) []*core.Job {
	deferredStageIndex := -1
	for i := range p.model.Stages {
		if !p.model.Stages[i].OmitsSlowProjects {
			deferredStageIndex = i
			break
		}
	}
	if deferredStageIndex < 0 || p.model.Stages[deferredStageIndex].Name != stage.Name {
		return nil
	}
	slowSubprojects := p.model.SlowSubprojects()
	var jobs []*core.Job
	for i := 0; i < deferredStageIndex; i++ {
		earlier := &p.model.Stages[i]
		for j := range earlier.FunctionalTests {
			coverage := &earlier.FunctionalTests[j]
			for _, subproject := range slowSubprojects {
				if !subproject.HasTestsOf(coverage.TestType) {
					continue
				}
				jobs = append(jobs, bucket.NewSubprojectBucket(subproject, 0).CreateJob(p.model, stage, coverage, -1))
			}
		}
	}
	return jobs
}
