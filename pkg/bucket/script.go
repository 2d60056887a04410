package bucket

import (
	"fmt"
	"strings"

	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/LambdaTest/bucketeer/pkg/core"
)

// FilterFileName returns the name of the filter file of the mode.
func FilterFileName(mode core.InclusionMode) string {
	return string(mode) + constants.FilterFileSuffix
}

// FilterFileContent renders the classes as filter file lines, one testClass=sourceSet per line.
func FilterFileContent(classes []*core.TestClassTime) string {
	lines := make([]string, 0, len(classes))
	for _, c := range classes {
		lines = append(lines, c.PropertiesLine())
	}
	return strings.Join(lines, "\n")
}

// PrepareTestClassesStep returns the step writing the filter file before the tests run.
func PrepareTestClassesStep(os core.OS, mode core.InclusionMode, classes []*core.TestClassTime) core.Step {
	script := unixScript(mode, classes)
	if os == core.Windows {
		script = windowsScript(mode, classes)
	}
	return core.Step{
		Name:          constants.PrepareTestClassesStep,
		ExecutionMode: core.ExecutionModeAlways,
		Script:        script,
	}
}

func unixScript(mode core.InclusionMode, classes []*core.TestClassTime) string {
	file := constants.DefaultBuildDir + "/" + FilterFileName(mode)
	var sb strings.Builder
	fmt.Fprintf(&sb, "mkdir -p %s\n", constants.DefaultBuildDir)
	fmt.Fprintf(&sb, "rm -rf %s/*%s\n", constants.DefaultBuildDir, constants.FilterFileSuffix)
	// keeps '$' literal
	fmt.Fprintf(&sb, "cat > %s << 'EOL'\n", file)
	if len(classes) > 0 {
		sb.WriteString(FilterFileContent(classes))
		sb.WriteString("\n")
	}
	sb.WriteString("EOL\n\n")
	fmt.Fprintf(&sb, "echo \"Tests to be %sd in this build\"\n", mode)
	fmt.Fprintf(&sb, "cat %s\n", file)
	return sb.String()
}

func windowsScript(mode core.InclusionMode, classes []*core.TestClassTime) string {
	file := constants.DefaultBuildDir + `\` + FilterFileName(mode)
	var sb strings.Builder
	fmt.Fprintf(&sb, "mkdir %s\n", constants.DefaultBuildDir)
	for _, m := range []core.InclusionMode{core.Include, core.Exclude} {
		fmt.Fprintf(&sb, "del /f /q %s\\%s\n", constants.DefaultBuildDir, FilterFileName(m))
	}
	sb.WriteString("(\n")
	for _, c := range classes {
		fmt.Fprintf(&sb, "echo %s\n", c.PropertiesLine())
	}
	fmt.Fprintf(&sb, ") > %s\n\n", file)
	fmt.Fprintf(&sb, "echo \"Tests to be %sd in this build\"\n", mode)
	fmt.Fprintf(&sb, "type %s\n", file)
	return sb.String()
}
