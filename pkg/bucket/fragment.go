package bucket

import (
	"sort"

	"github.com/LambdaTest/bucketeer/pkg/core"
	"github.com/LambdaTest/bucketeer/pkg/testsplitter"
)

// SplitSubproject cuts an oversized subproject into the given number of fragments by
// splitting its test classes. A single class is never divided. Every fragment but the
// last includes its classes; the last one excludes the classes of all earlier fragments,
// so it also runs classes without recorded history.
func SplitSubproject(item *core.SubprojectClassTimes, fragments int) []core.Bucket {
	if fragments <= 1 || len(item.Classes) == 0 {
		return []core.Bucket{NewSubprojectBucket(item.Subproject, item.Weight())}
	}

	classes := make([]*core.TestClassTime, len(item.Classes))
	copy(classes, item.Classes)
	sort.SliceStable(classes, func(i, j int) bool {
		if classes[i].BuildTimeMs != classes[j].BuildTimeMs {
			return classes[i].BuildTimeMs > classes[j].BuildTimeMs
		}
		return classes[i].TestClass < classes[j].TestClass
	})

	groups, err := testsplitter.Split(classes,
		func(class *core.TestClassTime, _ int) [][]*core.TestClassTime {
			return [][]*core.TestClassTime{{class}}
		},
		func(group []*core.TestClassTime) []*core.TestClassTime {
			return group
		},
		fragments, testsplitter.Unbounded)
	if err != nil || len(groups) < 2 {
		return []core.Bucket{NewSubprojectBucket(item.Subproject, item.Weight())}
	}

	buckets := make([]core.Bucket, 0, len(groups))
	var included []*core.TestClassTime
	for i, group := range groups[:len(groups)-1] {
		buckets = append(buckets, &LargeSubprojectSplitBucket{
			Subproject: item.Subproject,
			Number:     i + 1,
			Mode:       core.Include,
			Classes:    group,
			totalTime:  sumTime(group),
		})
		included = append(included, group...)
	}
	buckets = append(buckets, &LargeSubprojectSplitBucket{
		Subproject: item.Subproject,
		Number:     len(groups),
		Mode:       core.Exclude,
		Classes:    included,
		totalTime:  item.Weight() - sumTime(included),
	})
	return buckets
}

func sumTime(classes []*core.TestClassTime) int {
	total := 0
	for _, c := range classes {
		total += c.BuildTimeMs
	}
	return total
}
