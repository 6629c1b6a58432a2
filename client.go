package main

import (
	"os"
)

// BucketClient is the storage backend contract the sync engine depends on.
// Listing is always a full, pagination-complete key set for the bucket; the
// engine does its own prefix filtering.
type BucketClient interface {
	ListObjects(bucket string) ([]string, error)
	UploadFile(bucket string, key string, file *os.File) error
	DownloadFile(bucket string, key string, localPath string) error
}
