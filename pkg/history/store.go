package history

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/LambdaTest/bucketeer/config"
	"github.com/LambdaTest/bucketeer/pkg/constants"
	"github.com/LambdaTest/bucketeer/pkg/core"
	errs "github.com/LambdaTest/bucketeer/pkg/errors"
	"github.com/LambdaTest/bucketeer/pkg/lumber"
	"github.com/avast/retry-go/v4"
	pkgerrors "github.com/pkg/errors"
)

// New returns the history store of the configured source. azureClient is only used by the
// azure source and may be nil otherwise.
func New(cfg *config.HistoryConfig, azureClient core.AzureBlob, logger lumber.Logger) (core.HistoryStore, error) {
	switch cfg.Source {
	case constants.HistorySourceFile:
		return &fileStore{path: cfg.Path, logger: logger}, nil
	case constants.HistorySourceAzure:
		if azureClient == nil {
			return nil, errs.ErrAzureConfig
		}
		// zero attempts retries forever
		maxRetries := cfg.MaxRetries
		if maxRetries == 0 {
			maxRetries = 1
		}
		return &blobStore{
			client:     azureClient,
			blobPath:   cfg.BlobPath,
			maxRetries: maxRetries,
			delay:      cfg.RetryDelay,
			maxJitter:  cfg.MaxJitter,
			logger:     logger,
		}, nil
	default:
		return nil, errs.ErrUnknownHistorySource
	}
}

type fileStore struct {
	path   string
	logger lumber.Logger
}

func (f *fileStore) Load(ctx context.Context) (core.BuildProjectClassTimes, error) {
	file, err := os.Open(f.path)
	if err != nil {
		f.logger.Errorf("failed to open test class times file %s, error: %v", f.path, err)
		return nil, pkgerrors.Wrapf(err, "failed to open %s", f.path)
	}
	defer file.Close()
	return Parse(file, f.logger)
}

type blobStore struct {
	client     core.AzureBlob
	blobPath   string
	maxRetries uint
	delay      time.Duration
	maxJitter  time.Duration
	logger     lumber.Logger
}

func (b *blobStore) Load(ctx context.Context) (core.BuildProjectClassTimes, error) {
	var classTimes core.BuildProjectClassTimes
	err := retry.Do(func() error {
		reader, err := b.client.DownloadStream(ctx, b.blobPath, core.HistoryContainer)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return &errs.ErrSkipRetry{Err: err}
			}
			return err
		}
		defer reader.Close()
		parsed, err := Parse(reader, b.logger)
		if err != nil {
			return &errs.ErrSkipRetry{Err: err}
		}
		classTimes = parsed
		return nil
	},
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.Attempts(b.maxRetries),
		retry.Delay(b.delay),
		retry.MaxJitter(b.maxJitter),
		retry.RetryIf(func(err error) bool {
			// skip if error is of type ErrSkipRetry
			var skipErr *errs.ErrSkipRetry
			return !errors.As(err, &skipErr)
		}),
		retry.OnRetry(func(n uint, err error) {
			b.logger.Errorf("failed to download test class times %s, retry %d, error: %+v", b.blobPath, n, err)
		}))
	if errors.Is(err, errs.ErrNotFound) {
		b.logger.Warnf("test class times %s not found, coverages run unsplit", b.blobPath)
		return core.BuildProjectClassTimes{}, nil
	}
	if err != nil {
		return nil, err
	}
	return classTimes, nil
}
