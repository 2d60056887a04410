package core

import (
	"fmt"
	"strings"
)

// TestType specifies the kind of functional test coverage.
type TestType string

// TestType values.
const (
	TestTypeQuick                        TestType = "quick"
	TestTypePlatform                     TestType = "platform"
	TestTypeParallel                     TestType = "parallel"
	TestTypeNoDaemon                     TestType = "noDaemon"
	TestTypeQuickFeedbackCrossVersion    TestType = "quickFeedbackCrossVersion"
	TestTypeAllVersionsCrossVersion      TestType = "allVersionsCrossVersion"
	TestTypeAllVersionsIntegMultiVersion TestType = "allVersionsIntegMultiVersion"
)

type testTypeTraits struct {
	unitTests         bool
	functionalTests   bool
	crossVersionTests bool
}

var testTypes = map[TestType]testTypeTraits{
	TestTypeQuick:                        {unitTests: true, functionalTests: true},
	TestTypePlatform:                     {unitTests: true, functionalTests: true},
	TestTypeParallel:                     {functionalTests: true},
	TestTypeNoDaemon:                     {functionalTests: true},
	TestTypeQuickFeedbackCrossVersion:    {crossVersionTests: true},
	TestTypeAllVersionsCrossVersion:      {crossVersionTests: true},
	TestTypeAllVersionsIntegMultiVersion: {functionalTests: true},
}

// Valid reports whether the test type is known.
func (t TestType) Valid() bool {
	_, ok := testTypes[t]
	return ok
}

// IsCrossVersion reports whether the coverage runs against older releases.
func (t TestType) IsCrossVersion() bool {
	return t == TestTypeQuickFeedbackCrossVersion || t == TestTypeAllVersionsCrossVersion
}

// OS is the operating system a coverage runs on.
type OS string

// OS values.
const (
	Linux   OS = "linux"
	Windows OS = "windows"
	MacOS   OS = "macos"
)

// Subproject is a unit of the code base owning its own tests.
type Subproject struct {
	Name              string `json:"name" yaml:"name" validate:"required"`
	UnitTests         bool   `json:"unitTests" yaml:"unitTests"`
	FunctionalTests   bool   `json:"functionalTests" yaml:"functionalTests"`
	CrossVersionTests bool   `json:"crossVersionTests" yaml:"crossVersionTests"`
	ContainsSlowTests bool   `json:"containsSlowTests" yaml:"containsSlowTests"`
}

// HasTestsOf reports whether the subproject has tests run by the given test type.
func (s *Subproject) HasTestsOf(testType TestType) bool {
	traits := testTypes[testType]
	return (s.UnitTests && traits.unitTests) ||
		(s.FunctionalTests && traits.functionalTests) ||
		(s.CrossVersionTests && traits.crossVersionTests)
}

// TestCoverage is one functional test configuration of a stage.
type TestCoverage struct {
	UUID           int      `json:"uuid" yaml:"uuid" validate:"gte=0"`
	TestType       TestType `json:"testType" yaml:"testType" validate:"required,testtype"`
	OS             OS       `json:"os" yaml:"os" validate:"required,oneof=linux windows macos"`
	TestJvmVersion string   `json:"testJvmVersion" yaml:"testJvmVersion" validate:"required"`
	Vendor         string   `json:"vendor" yaml:"vendor" validate:"required"`
}

// AsID returns the build project id of the coverage.
func (c *TestCoverage) AsID(model *CIModel) string {
	return fmt.Sprintf("%s%s_%d", model.ProjectPrefix, capitalize(string(c.TestType)), c.UUID)
}

// AsConfigurationID returns the id of a job of the coverage.
func (c *TestCoverage) AsConfigurationID(model *CIModel, suffix string) string {
	return fmt.Sprintf("%s_%s", c.AsID(model), suffix)
}

// AsName returns the display name of the coverage.
func (c *TestCoverage) AsName() string {
	return fmt.Sprintf("Test Coverage - %s %s %s %s",
		capitalize(string(c.TestType)), capitalize(c.TestJvmVersion), capitalize(c.Vendor), capitalize(string(c.OS)))
}

// Stage is a group of coverages that run together in the pipeline.
type Stage struct {
	Name              string         `json:"name" yaml:"name" validate:"required"`
	OmitsSlowProjects bool           `json:"omitsSlowProjects" yaml:"omitsSlowProjects"`
	FunctionalTests   []TestCoverage `json:"functionalTests" yaml:"functionalTests" validate:"dive"`
}

// CIModel describes the stages and subprojects of the pipeline.
type CIModel struct {
	ProjectPrefix string       `json:"projectPrefix" yaml:"projectPrefix" validate:"required"`
	Stages        []Stage      `json:"stages" yaml:"stages" validate:"required,min=1,unique=Name,dive"`
	Subprojects   []Subproject `json:"subprojects" yaml:"subprojects" validate:"unique=Name,dive"`
}

// SubprojectByName returns the subproject with the given name or nil.
func (m *CIModel) SubprojectByName(name string) *Subproject {
	for i := range m.Subprojects {
		if m.Subprojects[i].Name == name {
			return &m.Subprojects[i]
		}
	}
	return nil
}

// SubprojectsFor returns the subprojects a coverage of the stage has to run, in model order.
func (m *CIModel) SubprojectsFor(coverage *TestCoverage, stage *Stage) []*Subproject {
	subprojects := make([]*Subproject, 0, len(m.Subprojects))
	for i := range m.Subprojects {
		s := &m.Subprojects[i]
		if s.ContainsSlowTests && stage.OmitsSlowProjects {
			continue
		}
		if s.HasTestsOf(coverage.TestType) {
			subprojects = append(subprojects, s)
		}
	}
	return subprojects
}

// SlowSubprojects returns the subprojects containing slow tests.
func (m *CIModel) SlowSubprojects() []*Subproject {
	var slow []*Subproject
	for i := range m.Subprojects {
		if m.Subprojects[i].ContainsSlowTests {
			slow = append(slow, &m.Subprojects[i])
		}
	}
	return slow
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
