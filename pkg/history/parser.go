// Package history loads the recorded test class timings the buckets are balanced by.
package history

import (
	"io"

	"github.com/LambdaTest/bucketeer/pkg/core"
	"github.com/LambdaTest/bucketeer/pkg/lumber"
	"github.com/LambdaTest/bucketeer/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Parse decodes the timings of every build project. A build project whose entry can not be
// decoded is logged and left out, its coverage then runs unsplit.
func Parse(r io.Reader, logger lumber.Logger) (core.BuildProjectClassTimes, error) {
	var raw map[string]jsoniter.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "failed to decode test class times")
	}
	classTimes := make(core.BuildProjectClassTimes, len(raw))
	for _, buildProjectID := range utils.SortedKeys(raw) {
		subprojects, err := parseBuildProject(raw[buildProjectID])
		if err != nil {
			logger.Warnf("skipping test class times of build project %s, error: %v", buildProjectID, err)
			continue
		}
		classTimes[buildProjectID] = subprojects
	}
	return classTimes, nil
}

func parseBuildProject(data []byte) (core.SubprojectClassTimesMap, error) {
	var subprojects core.SubprojectClassTimesMap
	if err := json.Unmarshal(data, &subprojects); err != nil {
		return nil, err
	}
	for name, classes := range subprojects {
		for i, class := range classes {
			if class == nil {
				return nil, errors.Errorf("subproject %s: empty class entry at %d", name, i)
			}
			if class.TestClass == "" {
				return nil, errors.Errorf("subproject %s: missing test class at %d", name, i)
			}
			if class.BuildTimeMs < 0 {
				return nil, errors.Errorf("subproject %s: negative build time for %s", name, class.TestClass)
			}
		}
	}
	return subprojects, nil
}
