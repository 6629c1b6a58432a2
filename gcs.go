package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type GCSClient struct {
	Client *storage.Client
}

func NewGCSBucketClient(appConfig AppConfig) (BucketClient, error) {
	var bucketClient BucketClient

	opts := make([]option.ClientOption, 0)
	if appConfig.Provider.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(appConfig.Provider.CredentialsFile))
	}
	gcsClient, clientErr := storage.NewClient(context.TODO(), opts...)
	if clientErr != nil {
		return bucketClient, fmt.Errorf("Error creating gcs client: %+v\n", clientErr)
	}
	bucketClient = &GCSClient{Client: gcsClient}

	return bucketClient, nil
}

func (s *GCSClient) ListObjects(bucketName string) ([]string, error) {
	bucketKeys := make([]string, 0)
	objIter := s.Client.Bucket(bucketName).Objects(context.TODO(), nil)
	for {
		attrs, err := objIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return bucketKeys, fmt.Errorf("Bucket(%q).Objects: %v", bucketName, err)
		}
		bucketKeys = append(bucketKeys, attrs.Name)
	}

	return bucketKeys, nil
}

func (s *GCSClient) UploadFile(bucketName, key string, file *os.File) error {
	object := s.Client.Bucket(bucketName).Object(key)
	objWriter := object.NewWriter(context.TODO())
	if _, uploadErr := io.Copy(objWriter, file); uploadErr != nil {
		return uploadErr
	}
	if closeErr := objWriter.Close(); closeErr != nil {
		return closeErr
	}

	return nil
}

func (s *GCSClient) DownloadFile(bucketName, key, localPath string) error {
	object := s.Client.Bucket(bucketName).Object(key)
	objReader, readerErr := object.NewReader(context.TODO())
	if readerErr != nil {
		return readerErr
	}
	defer objReader.Close()

	fd, createErr := os.Create(localPath)
	if createErr != nil {
		return createErr
	}
	defer fd.Close()

	if _, copyErr := io.Copy(fd, objReader); copyErr != nil {
		return copyErr
	}

	return nil
}
