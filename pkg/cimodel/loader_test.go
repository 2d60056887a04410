package cimodel

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LambdaTest/bucketeer/pkg/core"
	errs "github.com/LambdaTest/bucketeer/pkg/errors"
	"github.com/LambdaTest/bucketeer/pkg/lumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validModel = `
projectPrefix: Check_
subprojects:
  - name: core
    unitTests: true
    functionalTests: true
  - name: launcher
    functionalTests: true
    containsSlowTests: true
  - name: compat
    crossVersionTests: true
stages:
  - name: QuickFeedback
    omitsSlowProjects: true
    functionalTests:
      - uuid: 1
        testType: quick
        os: linux
        testJvmVersion: java8
        vendor: oracle
  - name: ReadyForRelease
    functionalTests:
      - uuid: 2
        testType: allVersionsCrossVersion
        os: windows
        testJvmVersion: java11
        vendor: openjdk
`

func newTestLoader(t *testing.T) *Loader {
	logger, err := lumber.NewLogger(lumber.LoggingConfig{EnableConsole: true, ConsoleLevel: lumber.Debug}, true, lumber.InstanceZapLogger)
	require.NoError(t, err)
	loader, err := New(logger)
	require.NoError(t, err)
	return loader
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ci-model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validModel), 0o600))

	model, err := newTestLoader(t).Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Check_", model.ProjectPrefix)
	require.Len(t, model.Subprojects, 3)
	assert.True(t, model.Subprojects[1].ContainsSlowTests)
	require.Len(t, model.Stages, 2)
	assert.True(t, model.Stages[0].OmitsSlowProjects)
	coverage := model.Stages[1].FunctionalTests[0]
	assert.Equal(t, core.TestTypeAllVersionsCrossVersion, coverage.TestType)
	assert.Equal(t, core.Windows, coverage.OS)
	assert.Equal(t, "Check_AllVersionsCrossVersion_2", coverage.AsID(model))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := newTestLoader(t).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseInvalidModel(t *testing.T) {
	tests := []struct {
		name        string
		model       string
		fieldSuffix string
		reason      string
	}{
		{
			name:        "unknown test type",
			model:       strings.Replace(validModel, "testType: quick", "testType: nightly", 1),
			fieldSuffix: "functionalTests[0].testType",
			reason:      "testType must be a known test type",
		},
		{
			name:        "unknown os",
			model:       strings.Replace(validModel, "os: linux", "os: solaris", 1),
			fieldSuffix: "functionalTests[0].os",
		},
		{
			name:        "duplicate stage",
			model:       strings.Replace(validModel, "name: ReadyForRelease", "name: QuickFeedback", 1),
			fieldSuffix: "stages",
		},
		{
			name:        "missing prefix",
			model:       strings.Replace(validModel, "projectPrefix: Check_", "", 1),
			fieldSuffix: "projectPrefix",
			reason:      "projectPrefix is a required field",
		},
	}
	loader := newTestLoader(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Parse([]byte(tt.model))

			var verr *errs.ModelValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			require.Len(t, verr.Fields, 1)
			assert.True(t, strings.HasSuffix(verr.Fields[0].Field, tt.fieldSuffix), verr.Fields[0].Field)
			if tt.reason != "" {
				assert.Equal(t, tt.reason, verr.Fields[0].Reason)
			}
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := newTestLoader(t).Parse([]byte(validModel + "owner: build-tool-team\n"))

	require.Error(t, err)
	var verr *errs.ModelValidationError
	assert.False(t, errors.As(err, &verr))
}
