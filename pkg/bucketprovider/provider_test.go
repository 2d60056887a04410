package bucketprovider

import (
	"testing"

	"github.com/LambdaTest/bucketeer/pkg/bucket"
	"github.com/LambdaTest/bucketeer/pkg/core"
	errs "github.com/LambdaTest/bucketeer/pkg/errors"
	"github.com/LambdaTest/bucketeer/pkg/jobbuilder"
	"github.com/LambdaTest/bucketeer/pkg/lumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() *core.CIModel {
	return &core.CIModel{
		ProjectPrefix: "Check_",
		Subprojects: []core.Subproject{
			{Name: "core", UnitTests: true, FunctionalTests: true},
			{Name: "api", FunctionalTests: true},
			{Name: "docs", FunctionalTests: true},
			{Name: "slow", FunctionalTests: true, ContainsSlowTests: true},
			{Name: "compat", CrossVersionTests: true},
		},
		Stages: []core.Stage{
			{
				Name:              "QuickFeedback",
				OmitsSlowProjects: true,
				FunctionalTests: []core.TestCoverage{
					{UUID: 1, TestType: core.TestTypeQuick, OS: core.Linux, TestJvmVersion: "java8", Vendor: "oracle"},
				},
			},
			{
				Name: "ReadyForRelease",
				FunctionalTests: []core.TestCoverage{
					{UUID: 2, TestType: core.TestTypePlatform, OS: core.Windows, TestJvmVersion: "java11", Vendor: "openjdk"},
					{UUID: 3, TestType: core.TestTypeQuickFeedbackCrossVersion, OS: core.Linux, TestJvmVersion: "java8", Vendor: "oracle"},
					{UUID: 4, TestType: core.TestTypeAllVersionsIntegMultiVersion, OS: core.Linux, TestJvmVersion: "java8", Vendor: "oracle"},
				},
			},
		},
	}
}

func newTestLogger(t *testing.T) lumber.Logger {
	logger, err := lumber.NewLogger(lumber.LoggingConfig{EnableConsole: true, ConsoleLevel: lumber.Debug}, true, lumber.InstanceZapLogger)
	require.NoError(t, err)
	return logger
}

func newTestProvider(t *testing.T, model *core.CIModel, history core.BuildProjectClassTimes, opts Options) core.BucketProvider {
	logger := newTestLogger(t)
	p, err := New(model, history, opts, jobbuilder.New(model, logger), logger)
	require.NoError(t, err)
	return p
}

func classTime(name, sourceSet string, ms int) *core.TestClassTime {
	return &core.TestClassTime{TestClass: name, SourceSet: sourceSet, BuildTimeMs: ms}
}

func subprojectNames(t *testing.T, b core.Bucket) []string {
	switch v := b.(type) {
	case *bucket.SubprojectBucket:
		return []string{v.Subproject.Name}
	case *bucket.SmallSubprojectBucket:
		names := make([]string, 0, len(v.Subprojects))
		for _, s := range v.Subprojects {
			names = append(names, s.Name)
		}
		return names
	case *bucket.LargeSubprojectSplitBucket:
		return []string{v.ID()}
	default:
		t.Fatalf("unexpected bucket %T", b)
		return nil
	}
}

func TestBucketsWithoutHistory(t *testing.T) {
	tests := []struct {
		name    string
		history core.BuildProjectClassTimes
	}{
		{name: "missing build project", history: core.BuildProjectClassTimes{}},
		{name: "empty build project", history: core.BuildProjectClassTimes{"Check_Quick_1": {}}},
		{name: "nil history", history: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := newTestModel()
			p := newTestProvider(t, model, tt.history, DefaultOptions())
			stage := &model.Stages[0]

			buckets, err := p.Buckets(stage, &stage.FunctionalTests[0])

			require.NoError(t, err)
			require.Len(t, buckets, 3)
			for i, want := range []string{"core", "api", "docs"} {
				sb, ok := buckets[i].(*bucket.SubprojectBucket)
				require.True(t, ok)
				assert.Equal(t, want, sb.Subproject.Name)
			}
		})
	}
}

func TestBucketsFromHistory(t *testing.T) {
	model := newTestModel()
	history := core.BuildProjectClassTimes{
		"Check_Quick_1": {
			"core": {
				classTime("org.core.BigIntegTest", "integTest", 300),
				classTime("org.core.SmallIntegTest", "integTest", 200),
				classTime("org.core.UnitTest", "test", 1000),
			},
			"api":     {classTime("org.api.ApiIntegTest", "integTest", 100)},
			"UNKNOWN": {classTime("org.Unknown", "integTest", 500)},
			"ghost":   {classTime("org.ghost.GhostTest", "integTest", 400)},
			"slow":    {classTime("org.slow.SlowTest", "integTest", 999)},
		},
	}
	p := newTestProvider(t, model, history, Options{BucketNumber: 2, MaxSubprojectsPerBucket: 10, VersionMatrixSize: 6})
	stage := &model.Stages[0]

	buckets, err := p.Buckets(stage, &stage.FunctionalTests[0])

	require.NoError(t, err)
	require.Len(t, buckets, 3)

	first := buckets[0].(*bucket.LargeSubprojectSplitBucket)
	assert.Equal(t, core.Include, first.Mode)
	require.Len(t, first.Classes, 1)
	assert.Equal(t, "org.core.BigIntegTest", first.Classes[0].TestClass)
	assert.Equal(t, 300, first.TotalTime())

	second := buckets[1].(*bucket.LargeSubprojectSplitBucket)
	assert.Equal(t, core.Exclude, second.Mode)
	assert.Equal(t, first.Classes, second.Classes)
	assert.Equal(t, 200, second.TotalTime())

	assert.Equal(t, []string{"api", "docs"}, subprojectNames(t, buckets[2]))
	assert.Equal(t, 100, buckets[2].TotalTime())
}

func TestBucketsVersionMatrix(t *testing.T) {
	model := newTestModel()
	p := newTestProvider(t, model, nil, DefaultOptions())
	stage := &model.Stages[1]

	buckets, err := p.Buckets(stage, &stage.FunctionalTests[1])

	require.NoError(t, err)
	require.Len(t, buckets, 6)
	for i, b := range buckets {
		assert.Equal(t, i+1, b.(*bucket.VersionBucket).MajorVersion)
	}
}

func TestBucketsWholeSuite(t *testing.T) {
	model := newTestModel()
	p := newTestProvider(t, model, nil, DefaultOptions())
	stage := &model.Stages[1]

	buckets, err := p.Buckets(stage, &stage.FunctionalTests[2])

	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.IsType(t, bucket.WholeSuiteBucket{}, buckets[0])
}

func TestBucketsUnknownCoverage(t *testing.T) {
	model := newTestModel()
	p := newTestProvider(t, model, nil, DefaultOptions())

	_, err := p.Buckets(&model.Stages[0], &core.TestCoverage{UUID: 99, TestType: core.TestTypeQuick})

	assert.ErrorIs(t, err, errs.ErrUnknownCoverage)
}

func TestNewInvalidOptions(t *testing.T) {
	model := newTestModel()
	logger := newTestLogger(t)
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{name: "no buckets", opts: Options{BucketNumber: 0, MaxSubprojectsPerBucket: 10}, want: errs.ErrInvalidBucketNumber},
		{name: "no subprojects per bucket", opts: Options{BucketNumber: 5}, want: errs.ErrInvalidMaxItems},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(model, nil, tt.opts, jobbuilder.New(model, logger), logger)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateJobsFor(t *testing.T) {
	model := newTestModel()
	p := newTestProvider(t, model, nil, DefaultOptions())
	stage := &model.Stages[0]

	jobs, err := p.CreateJobsFor(stage, &stage.FunctionalTests[0])

	require.NoError(t, err)
	require.Len(t, jobs, 3)
	for i, id := range []string{"Check_Quick_1_bucket1", "Check_Quick_1_bucket2", "Check_Quick_1_bucket3"} {
		assert.Equal(t, id, jobs[i].ID)
		assert.Equal(t, "QuickFeedback", jobs[i].Stage)
		assert.Equal(t, "Check_Quick_1", jobs[i].CoverageID)
	}
}

func TestCreateDeferredJobsFor(t *testing.T) {
	model := newTestModel()
	p := newTestProvider(t, model, nil, DefaultOptions())

	assert.Empty(t, p.CreateDeferredJobsFor(&model.Stages[0]))

	jobs := p.CreateDeferredJobsFor(&model.Stages[1])
	require.Len(t, jobs, 1)
	assert.Equal(t, "Check_Quick_1_slow", jobs[0].ID)
	assert.Equal(t, "ReadyForRelease", jobs[0].Stage)
	assert.Equal(t, []string{"slow"}, jobs[0].Subprojects)
}

func TestBucketsAreDeterministic(t *testing.T) {
	history := core.BuildProjectClassTimes{
		"Check_Platform_2": {
			"core": {classTime("org.core.A", "integTest", 40), classTime("org.core.B", "integTest", 40)},
			"api":  {classTime("org.api.A", "integTest", 40)},
			"docs": {classTime("org.docs.A", "integTest", 40)},
			"slow": {classTime("org.slow.A", "integTest", 40)},
		},
	}
	opts := Options{BucketNumber: 3, MaxSubprojectsPerBucket: 2, VersionMatrixSize: 6}
	var previous []*core.Job
	for i := 0; i < 5; i++ {
		model := newTestModel()
		p := newTestProvider(t, model, history, opts)
		stage := &model.Stages[1]
		jobs, err := p.CreateJobsFor(stage, &stage.FunctionalTests[0])
		require.NoError(t, err)
		if previous != nil {
			assert.Equal(t, previous, jobs)
		}
		previous = jobs
	}
}
