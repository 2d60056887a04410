// Package testfilter decides on the runner which test classes and tasks a job executes.
package testfilter

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/LambdaTest/bucketeer/pkg/bucket"
	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/LambdaTest/bucketeer/pkg/core"
	"github.com/LambdaTest/bucketeer/pkg/lumber"
	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// TestTask is one test task of a subproject.
type TestTask struct {
	Name                  string   `json:"name"`
	SourceSet             string   `json:"sourceSet"`
	Enabled               bool     `json:"enabled"`
	FailOnNoMatchingTests bool     `json:"failOnNoMatchingTests"`
	IncludePatterns       []string `json:"includePatterns,omitempty"`
	ExcludePatterns       []string `json:"excludePatterns,omitempty"`
}

// NewTestTask returns an enabled task failing when no test matches.
func NewTestTask(name, sourceSet string) *TestTask {
	return &TestTask{Name: name, SourceSet: sourceSet, Enabled: true, FailOnNoMatchingTests: true}
}

// Provider configures the test tasks of a job.
type Provider interface {
	Configure(task *TestTask) error
}

// Options are the job properties selecting the provider.
type Options struct {
	// Dir holds the filter files
	Dir                  string
	IncludeTestClasses   bool
	ExcludeTestClasses   bool
	OnlyTestMajorVersion string
}

// NewProvider returns the provider of the job: include filtering wins over exclude
// filtering, which wins over a cross version major.
func NewProvider(opts Options, readFile func(string) ([]byte, error), logger lumber.Logger) (Provider, error) {
	switch {
	case opts.IncludeTestClasses:
		if opts.ExcludeTestClasses {
			logger.Warnf("both %s and %s are set, only included classes run",
				constants.IncludeTestClassesProperty, constants.ExcludeTestClassesProperty)
		}
		classes, err := readFilterFile(opts.Dir, core.Include, readFile, logger)
		if err != nil {
			return nil, err
		}
		return &includeProvider{classes: classes}, nil
	case opts.ExcludeTestClasses:
		classes, err := readFilterFile(opts.Dir, core.Exclude, readFile, logger)
		if err != nil {
			return nil, err
		}
		return &excludeProvider{classes: classes}, nil
	case opts.OnlyTestMajorVersion != "":
		return newCrossVersionProvider(opts.OnlyTestMajorVersion)
	default:
		return noopProvider{}, nil
	}
}

func readFilterFile(dir string, mode core.InclusionMode, readFile func(string) ([]byte, error),
	logger lumber.Logger) (map[string][]string, error) {
	path := filepath.Join(dir, bucket.FilterFileName(mode))
	data, err := readFile(path)
	if err != nil {
		logger.Errorf("failed to read filter file %s, error: %v", path, err)
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	logger.Infof("Tests to be %sd:\n%s", mode, data)
	return ParseFilterFile(bytes.NewReader(data))
}

type includeProvider struct {
	classes map[string][]string
}

func (p *includeProvider) Configure(task *TestTask) error {
	if task.Name == constants.MultiVersionTaskName {
		// runs in the last fragment
		task.Enabled = false
		return nil
	}
	task.FailOnNoMatchingTests = false
	task.IncludePatterns = append(task.IncludePatterns, p.classes[task.SourceSet]...)
	return nil
}

type excludeProvider struct {
	classes map[string][]string
}

func (p *excludeProvider) Configure(task *TestTask) error {
	if task.Name == constants.MultiVersionTaskName {
		return nil
	}
	task.FailOnNoMatchingTests = false
	task.ExcludePatterns = append(task.ExcludePatterns, p.classes[task.SourceSet]...)
	return nil
}

var crossVersionTaskPattern = regexp.MustCompile(
	"^" + constants.VersionBucketPrefix + "(.+)" + constants.CrossVersionTaskSuffix + "$")

// crossVersionProvider enables the cross version tasks of versions in [major.0, major+1.0).
// Major 1 also covers the 0.x releases.
type crossVersionProvider struct {
	lower *semver.Version
	upper *semver.Version
}

func newCrossVersionProvider(onlyTestMajorVersion string) (*crossVersionProvider, error) {
	major, err := strconv.Atoi(onlyTestMajorVersion)
	if err != nil || major < 1 {
		return nil, errors.Errorf("invalid %s %q", constants.OnlyTestMajorVersionProperty, onlyTestMajorVersion)
	}
	lowerMajor := major
	if major == 1 {
		lowerMajor = 0
	}
	return &crossVersionProvider{
		lower: semver.MustParse(fmt.Sprintf("%d.0", lowerMajor)),
		upper: semver.MustParse(fmt.Sprintf("%d.0", major+1)),
	}, nil
}

func (p *crossVersionProvider) Configure(task *TestTask) error {
	match := crossVersionTaskPattern.FindStringSubmatch(task.Name)
	if match == nil {
		return nil
	}
	version, err := semver.NewVersion(match[1])
	if err != nil {
		return errors.Wrapf(err, "invalid version in task %s", task.Name)
	}
	task.Enabled = !version.LessThan(p.lower) && version.LessThan(p.upper)
	return nil
}

type noopProvider struct{}

func (noopProvider) Configure(*TestTask) error {
	return nil
}
