package errors

import "github.com/Azure/azure-storage-blob-go/azblob"

// AzureError maps the errors returned from Azure to the errors of this package.
func AzureError(err error) error {
	if err == nil {
		return nil
	}
	if serr, ok := err.(azblob.StorageError); ok { // This error is a Service-specific
		switch serr.ServiceCode() {
		case azblob.ServiceCodeBlobNotFound:
			return ErrNotFound
		case azblob.ServiceCodeContainerNotFound:
			return ErrUnknownContainer
		}
	}
	return err
}
