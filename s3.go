package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Client struct {
	Client *s3.Client
}

func NewS3BucketClient(appConfig AppConfig) (BucketClient, error) {
	var bucketClient BucketClient

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithSharedConfigProfile(appConfig.Provider.Profile),
		config.WithRegion(appConfig.Provider.Region))
	if err != nil {
		return bucketClient, fmt.Errorf("Error creating s3 client: %+v\n", err)
	}
	awsS3Client := s3.NewFromConfig(cfg)
	bucketClient = &S3Client{Client: awsS3Client}

	return bucketClient, nil
}

func (s *S3Client) ListObjects(bucketName string) ([]string, error) {
	bucketKeys := make([]string, 0)
	listParams := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucketName),
	}
	paginator := s3.NewListObjectsV2Paginator(s.Client, listParams, func(o *s3.ListObjectsV2PaginatorOptions) {})
	for paginator.HasMorePages() {
		currentPage, pageErr := paginator.NextPage(context.TODO())
		if pageErr != nil {
			return bucketKeys, pageErr
		}
		for _, object := range currentPage.Contents {
			bucketKeys = append(bucketKeys, *object.Key)
		}
	}

	return bucketKeys, nil
}

func (s *S3Client) UploadFile(bucketName, key string, file *os.File) error {
	uploader := manager.NewUploader(s.Client)
	_, putErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
		Body:   file,
	})

	return putErr
}

func (s *S3Client) DownloadFile(bucketName, key, localPath string) error {
	fd, createErr := os.Create(localPath)
	if createErr != nil {
		return createErr
	}
	defer fd.Close()

	downloader := manager.NewDownloader(s.Client)
	_, getErr := downloader.Download(context.TODO(), fd, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})

	return getErr
}
