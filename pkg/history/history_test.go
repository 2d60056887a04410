package history

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/LambdaTest/bucketeer/config"
	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/LambdaTest/bucketeer/pkg/core"
	errs "github.com/LambdaTest/bucketeer/pkg/errors"
	"github.com/LambdaTest/bucketeer/pkg/lumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validHistory = `{
  "Check_Quick_1": {
    "core": [
      {"testClass": "org.core.CoreIntegTest", "sourceSet": "integTest", "buildTimeMs": 1200},
      {"testClass": "org.core.CoreTest", "sourceSet": "test", "buildTimeMs": 30}
    ],
    "api": []
  },
  "Check_Platform_2": {
    "launcher": [{"testClass": "org.launcher.DaemonIntegTest", "sourceSet": "integTest", "buildTimeMs": 9000}]
  }
}`

func newTestLogger(t *testing.T) lumber.Logger {
	logger, err := lumber.NewLogger(lumber.LoggingConfig{EnableConsole: true, ConsoleLevel: lumber.Debug}, true, lumber.InstanceZapLogger)
	require.NoError(t, err)
	return logger
}

func TestParse(t *testing.T) {
	classTimes, err := Parse(strings.NewReader(validHistory), newTestLogger(t))

	require.NoError(t, err)
	require.Len(t, classTimes, 2)
	coreClasses := classTimes["Check_Quick_1"]["core"]
	require.Len(t, coreClasses, 2)
	assert.Equal(t, "org.core.CoreIntegTest", coreClasses[0].TestClass)
	assert.Equal(t, "integTest", coreClasses[0].SourceSet)
	assert.Equal(t, 1200, coreClasses[0].BuildTimeMs)
	assert.Empty(t, classTimes["Check_Quick_1"]["api"])
	assert.Equal(t, 9000, classTimes["Check_Platform_2"]["launcher"][0].Weight())
}

func TestParseSkipsMalformedBuildProjects(t *testing.T) {
	tests := []struct {
		name  string
		entry string
	}{
		{name: "not an object", entry: `[1, 2]`},
		{name: "wrong field type", entry: `{"core": [{"testClass": "org.A", "sourceSet": "integTest", "buildTimeMs": "slow"}]}`},
		{name: "negative time", entry: `{"core": [{"testClass": "org.A", "sourceSet": "integTest", "buildTimeMs": -1}]}`},
		{name: "null class", entry: `{"core": [null]}`},
		{name: "missing class name", entry: `{"core": [{"sourceSet": "integTest", "buildTimeMs": 5}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := `{"Check_Broken_9": ` + tt.entry + `, "Check_Quick_1": {"core": [{"testClass": "org.B", "sourceSet": "integTest", "buildTimeMs": 5}]}}`

			classTimes, err := Parse(strings.NewReader(input), newTestLogger(t))

			require.NoError(t, err)
			assert.NotContains(t, classTimes, "Check_Broken_9")
			assert.Contains(t, classTimes, "Check_Quick_1")
		})
	}
}

func TestParseInvalidDocument(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"Check_Quick_1": `), newTestLogger(t))
	assert.Error(t, err)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test-class-times.json")
	require.NoError(t, os.WriteFile(path, []byte(validHistory), 0o600))
	logger := newTestLogger(t)

	store, err := New(&config.HistoryConfig{Source: constants.HistorySourceFile, Path: path}, nil, logger)
	require.NoError(t, err)
	classTimes, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, classTimes, 2)

	missing, err := New(&config.HistoryConfig{Source: constants.HistorySourceFile, Path: path + ".missing"}, nil, logger)
	require.NoError(t, err)
	_, err = missing.Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewUnknownSource(t *testing.T) {
	logger := newTestLogger(t)

	_, err := New(&config.HistoryConfig{Source: "s3"}, nil, logger)
	assert.ErrorIs(t, err, errs.ErrUnknownHistorySource)

	_, err = New(&config.HistoryConfig{Source: constants.HistorySourceAzure}, nil, logger)
	assert.ErrorIs(t, err, errs.ErrAzureConfig)
}

type fakeBlob struct {
	responses []func() (io.ReadCloser, error)
	calls     int
}

func (f *fakeBlob) UploadBytes(context.Context, string, []byte, int, string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeBlob) DownloadStream(_ context.Context, _ string, containerID int) (io.ReadCloser, error) {
	if containerID != core.HistoryContainer {
		return nil, errs.ErrUnknownContainer
	}
	i := f.calls
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	f.calls++
	return f.responses[i]()
}

func body(s string) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(s)), nil
	}
}

func failure(err error) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return nil, err
	}
}

func newBlobStore(t *testing.T, blob core.AzureBlob) core.HistoryStore {
	store, err := New(&config.HistoryConfig{
		Source:     constants.HistorySourceAzure,
		BlobPath:   "times.json",
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
		MaxJitter:  time.Millisecond,
	}, blob, newTestLogger(t))
	require.NoError(t, err)
	return store
}

func TestBlobStoreRetries(t *testing.T) {
	blob := &fakeBlob{responses: []func() (io.ReadCloser, error){
		failure(errors.New("connection reset")),
		body(validHistory),
	}}

	classTimes, err := newBlobStore(t, blob).Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, classTimes, 2)
	assert.Equal(t, 2, blob.calls)
}

func TestBlobStoreNotFound(t *testing.T) {
	blob := &fakeBlob{responses: []func() (io.ReadCloser, error){failure(errs.ErrNotFound), body(validHistory)}}

	classTimes, err := newBlobStore(t, blob).Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, classTimes)
	assert.Equal(t, 1, blob.calls)
}

func TestBlobStoreInvalidDocumentIsNotRetried(t *testing.T) {
	blob := &fakeBlob{responses: []func() (io.ReadCloser, error){body("not json"), body(validHistory)}}

	_, err := newBlobStore(t, blob).Load(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, blob.calls)
}

func TestBlobStoreGivesUp(t *testing.T) {
	down := errors.New("service unavailable")
	blob := &fakeBlob{responses: []func() (io.ReadCloser, error){failure(down)}}

	_, err := newBlobStore(t, blob).Load(context.Background())

	assert.ErrorIs(t, err, down)
	assert.Equal(t, 3, blob.calls)
}

func TestBlobStoreZeroRetriesTriesOnce(t *testing.T) {
	down := errors.New("service unavailable")
	blob := &fakeBlob{responses: []func() (io.ReadCloser, error){failure(down), body(validHistory)}}

	store, err := New(&config.HistoryConfig{
		Source:     constants.HistorySourceAzure,
		BlobPath:   "times.json",
		RetryDelay: time.Millisecond,
	}, blob, newTestLogger(t))
	require.NoError(t, err)
	_, err = store.Load(context.Background())

	assert.ErrorIs(t, err, down)
	assert.Equal(t, 1, blob.calls)
}
