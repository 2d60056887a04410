package bucketprovider

import (
	"sort"

	"github.com/LambdaTest/bucketeer/pkg/bucket"
	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/LambdaTest/bucketeer/pkg/core"
	"github.com/LambdaTest/bucketeer/pkg/lumber"
	"github.com/LambdaTest/bucketeer/pkg/testsplitter"
	"github.com/LambdaTest/bucketeer/pkg/utils"
)

// bucketStrategy turns one coverage of a stage into its buckets.
type bucketStrategy interface {
	buckets(stage *core.Stage, coverage *core.TestCoverage) ([]core.Bucket, error)
}

// wholeSuiteStrategy runs the coverage as a single job.
type wholeSuiteStrategy struct{}

func (wholeSuiteStrategy) buckets(*core.Stage, *core.TestCoverage) ([]core.Bucket, error) {
	return []core.Bucket{bucket.WholeSuiteBucket{}}, nil
}

// versionMatrixStrategy runs one job per supported major version.
type versionMatrixStrategy struct {
	size int
}

func (s versionMatrixStrategy) buckets(*core.Stage, *core.TestCoverage) ([]core.Bucket, error) {
	return bucket.VersionMatrix(s.size), nil
}

// historyStrategy balances the subprojects of the coverage by their recorded class times.
type historyStrategy struct {
	model      *core.CIModel
	classTimes core.BuildProjectClassTimes
	opts       Options
	logger     lumber.Logger
}

func (s *historyStrategy) buckets(stage *core.Stage, coverage *core.TestCoverage) ([]core.Bucket, error) {
	validSubprojects := s.model.SubprojectsFor(coverage, stage)
	buildProjectID := coverage.AsID(s.model)

	subprojectClassTimes := s.classTimes[buildProjectID]
	if len(subprojectClassTimes) == 0 {
		s.logger.Infof("no split data for build project %s, one bucket per subproject", buildProjectID)
		buckets := make([]core.Bucket, 0, len(validSubprojects))
		for _, subproject := range validSubprojects {
			buckets = append(buckets, bucket.NewSubprojectBucket(subproject, 0))
		}
		return buckets, nil
	}

	validByName := make(map[string]*core.Subproject, len(validSubprojects))
	for _, subproject := range validSubprojects {
		validByName[subproject.Name] = subproject
	}
	items := make([]*core.SubprojectClassTimes, 0, len(validSubprojects))
	weighted := make(map[string]struct{}, len(validSubprojects))
	for _, name := range utils.SortedKeys(subprojectClassTimes) {
		if name == constants.UnknownSubproject {
			continue
		}
		subproject, ok := validByName[name]
		if !ok {
			if s.model.SubprojectByName(name) == nil {
				s.logger.Infof("subproject %s of build project %s is unknown to the model, skipping", name, buildProjectID)
			} else {
				s.logger.Debugf("subproject %s is not run by build project %s, skipping", name, buildProjectID)
			}
			continue
		}
		classes := make([]*core.TestClassTime, 0, len(subprojectClassTimes[name]))
		for _, class := range subprojectClassTimes[name] {
			// unit tests run unfiltered in the last fragment
			if class.SourceSet != constants.UnitTestSourceSet {
				classes = append(classes, class)
			}
		}
		items = append(items, core.NewSubprojectClassTimes(subproject, classes))
		weighted[name] = struct{}{}
	}
	// subprojects without history still need a bucket
	for _, subproject := range validSubprojects {
		if _, ok := weighted[subproject.Name]; !ok {
			s.logger.Debugf("subproject %s has no history in build project %s", subproject.Name, buildProjectID)
			items = append(items, core.NewSubprojectClassTimes(subproject, nil))
		}
	}
	if len(items) == 0 {
		return []core.Bucket{}, nil
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Weight() != items[j].Weight() {
			return items[i].Weight() > items[j].Weight()
		}
		return items[i].Subproject.Name < items[j].Subproject.Name
	})

	buckets, err := testsplitter.Split(items,
		bucket.SplitSubproject,
		bucket.NewSmallSubprojectBucket,
		s.opts.BucketNumber,
		s.opts.MaxSubprojectsPerBucket)
	if err != nil {
		s.logger.Errorf("failed to split build project %s, error: %v", buildProjectID, err)
		return nil, err
	}
	s.logger.Debugf("split build project %s into %d buckets, total time %dms",
		buildProjectID, len(buckets), utils.TotalTime(buckets))
	return buckets, nil
}
