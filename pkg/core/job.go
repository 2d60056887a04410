package core

import (
	"context"

	"gopkg.in/guregu/null.v4/zero"
)

// ExecutionMode specifies when a build step runs.
type ExecutionMode string

// ExecutionMode values.
const (
	ExecutionModeDefault ExecutionMode = "DEFAULT"
	ExecutionModeAlways  ExecutionMode = "ALWAYS"
)

// Step is a script run before the tests of a job.
type Step struct {
	Name          string        `json:"name" yaml:"name"`
	ExecutionMode ExecutionMode `json:"execution_mode" yaml:"execution_mode"`
	Script        string        `json:"script" yaml:"script"`
}

// Job is the CI job definition produced for a bucket.
type Job struct {
	ID                  string      `json:"id" yaml:"id"`
	UUID                string      `json:"uuid" yaml:"uuid"`
	Name                string      `json:"name" yaml:"name"`
	Description         string      `json:"description" yaml:"description"`
	CoverageID          string      `json:"coverage_id" yaml:"coverage_id"`
	Stage               string      `json:"stage" yaml:"stage"`
	OS                  OS          `json:"os" yaml:"os"`
	Subprojects         []string    `json:"subprojects" yaml:"subprojects"`
	ExtraParameters     zero.String `json:"extra_parameters" yaml:"extra_parameters"`
	PreBuildSteps       []Step      `json:"pre_build_steps,omitempty" yaml:"pre_build_steps,omitempty"`
	EstimatedDurationMs int         `json:"estimated_duration_ms" yaml:"estimated_duration_ms"`
}

// JobBuilder materializes buckets into jobs.
type JobBuilder interface {
	// CreateJobs creates one job per bucket, in bucket order.
	CreateJobs(stage *Stage, coverage *TestCoverage, buckets []Bucket) []*Job
	// CreateModelJobs creates the jobs of every coverage of every stage, deferred slow jobs included.
	CreateModelJobs(provider BucketProvider) ([]*Job, error)
}

// JobEmitter writes materialized jobs to their destination.
type JobEmitter interface {
	// Emit writes all jobs, preserving their order in the index.
	Emit(ctx context.Context, jobs []*Job) error
}
