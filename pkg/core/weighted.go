package core

import "fmt"

// Weighted is anything carrying an execution-time weight in milliseconds.
type Weighted interface {
	Weight() int
}

// TestClassTime is the recorded duration of a single test class.
type TestClassTime struct {
	TestClass   string `json:"testClass"`
	SourceSet   string `json:"sourceSet"`
	BuildTimeMs int    `json:"buildTimeMs"`
}

// Weight returns the recorded duration of the class.
func (t *TestClassTime) Weight() int {
	return t.BuildTimeMs
}

// PropertiesLine renders the class as a filter file line.
func (t *TestClassTime) PropertiesLine() string {
	return t.TestClass + "=" + t.SourceSet
}

// SubprojectClassTimes is a subproject together with the timings of its test classes.
type SubprojectClassTimes struct {
	Subproject *Subproject
	Classes    []*TestClassTime
	totalTime  int
}

// NewSubprojectClassTimes returns the aggregate of the given classes.
func NewSubprojectClassTimes(subproject *Subproject, classes []*TestClassTime) *SubprojectClassTimes {
	total := 0
	for _, c := range classes {
		total += c.BuildTimeMs
	}
	return &SubprojectClassTimes{Subproject: subproject, Classes: classes, totalTime: total}
}

// Weight returns the sum of all class durations.
func (s *SubprojectClassTimes) Weight() int {
	return s.totalTime
}

func (s *SubprojectClassTimes) String() string {
	return fmt.Sprintf("SubprojectClassTimes(subproject=%s, totalTime=%d)", s.Subproject.Name, s.totalTime)
}

// SubprojectClassTimesMap maps subproject name to its recorded test classes.
type SubprojectClassTimesMap map[string][]*TestClassTime

// BuildProjectClassTimes maps a build project id to the class timings of its subprojects.
type BuildProjectClassTimes map[string]SubprojectClassTimesMap
