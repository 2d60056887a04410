package azure

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/Azure/azure-storage-blob-go/azblob"
	"github.com/LambdaTest/bucketeer/config"
	"github.com/LambdaTest/bucketeer/pkg/core"
	errs "github.com/LambdaTest/bucketeer/pkg/errors"

	"github.com/LambdaTest/bucketeer/pkg/lumber"
)

// store represents the azure storage
type store struct {
	storageAccountURL    string
	logger               lumber.Logger
	historyContainerName string
	jobsContainerName    string
	service              azblob.ServiceURL
}

const (
	defaultBufferSize       = 4 * 1024 * 1024
	defaultParallelism      = 16
	defaultMaxRetryRequests = 5
)

// NewAzureBlobEnv returns a new Azure blob store.
func NewAzureBlobEnv(cfg *config.Config, logger lumber.Logger) (core.AzureBlob, error) {
	if cfg.Azure.StorageAccountName == "" ||
		cfg.Azure.StorageAccessKey == "" ||
		(cfg.Azure.HistoryContainerName == "" && cfg.Azure.JobsContainerName == "") {
		return nil, errs.ErrAzureConfig
	}
	// Create a default request pipeline using your storage account name and account key.
	credential, err := azblob.NewSharedKeyCredential(cfg.Azure.StorageAccountName, cfg.Azure.StorageAccessKey)
	if err != nil {
		logger.Errorf("Invalid azure credentials, error: %v", err)
		return nil, err
	}
	u, err := url.Parse(fmt.Sprintf("https://%s.blob.core.windows.net", cfg.Azure.StorageAccountName))
	if err != nil {
		return nil, err
	}
	pipe := azblob.NewPipeline(credential, azblob.PipelineOptions{})

	return &store{
		storageAccountURL:    u.String(),
		historyContainerName: cfg.Azure.HistoryContainerName,
		jobsContainerName:    cfg.Azure.JobsContainerName,
		service:              azblob.NewServiceURL(*u, pipe),
		logger:               logger,
	}, nil
}

func (s *store) DownloadStream(ctx context.Context, blobPath string, containerID int) (io.ReadCloser, error) {
	containerName, err := s.getContainerName(containerID)
	if err != nil {
		s.logger.Errorf("failed to find container for id %d, error %v", containerID, err)
		return nil, err
	}
	containerURL := s.service.NewContainerURL(containerName)
	blobURL := containerURL.NewBlockBlobURL(blobPath)

	s.logger.Debugf("downloading blob %s", blobURL.String())
	out, err := blobURL.Download(ctx, 0, azblob.CountToEnd, azblob.BlobAccessConditions{}, false, azblob.ClientProvidedKeyOptions{})
	if err != nil {
		return nil, errs.AzureError(err)
	}
	return out.Body(azblob.RetryReaderOptions{MaxRetryRequests: defaultMaxRetryRequests}), nil
}

func (s *store) UploadBytes(ctx context.Context, blobPath string, rawBytes []byte, containerID int, mimeType string) (string, error) {
	containerName, err := s.getContainerName(containerID)
	if err != nil {
		s.logger.Errorf("failed to find container for id %d, error %v", containerID, err)
		return "", err
	}
	containerURL := s.service.NewContainerURL(containerName)
	blobURL := containerURL.NewBlockBlobURL(blobPath)
	s.logger.Debugf("uploading bytes to blob %s", blobURL.String())
	_, err = azblob.UploadBufferToBlockBlob(ctx, rawBytes, blobURL, azblob.UploadToBlockBlobOptions{
		BlobHTTPHeaders: azblob.BlobHTTPHeaders{ContentType: mimeType},
		BlockSize:       defaultBufferSize,
		Parallelism:     defaultParallelism,
	})

	return blobURL.String(), err
}

func (s *store) getContainerName(containerID int) (string, error) {
	var name string
	switch containerID {
	case core.HistoryContainer:
		name = s.historyContainerName
	case core.JobsContainer:
		name = s.jobsContainerName
	}
	if name == "" {
		return "", errs.ErrUnknownContainer
	}
	return name, nil
}
