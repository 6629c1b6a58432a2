package main

import (
	"os"
	"sync"
)

type MockBucketClient struct {
	UploadRequests   []MockRequest
	DownloadRequests []MockRequest
	mockList         []string
	listErr          error
	uploadErr        error
	downloadErr      error
	lock             sync.Mutex
}

type MockRequest struct {
	Bucket    string
	Key       string
	LocalPath string
}

func NewMockClient(mocked []string) *MockBucketClient {
	return &MockBucketClient{
		UploadRequests:   make([]MockRequest, 0),
		DownloadRequests: make([]MockRequest, 0),
		mockList:         mocked,
	}
}

func (s *MockBucketClient) ListObjects(string) ([]string, error) {
	return s.mockList, s.listErr
}

func (s *MockBucketClient) UploadFile(bucketName string, key string, file *os.File) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.UploadRequests = append(s.UploadRequests, MockRequest{Bucket: bucketName, Key: key})
	return s.uploadErr
}

func (s *MockBucketClient) DownloadFile(bucketName string, key string, localPath string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.DownloadRequests = append(s.DownloadRequests, MockRequest{Bucket: bucketName, Key: key, LocalPath: localPath})
	return s.downloadErr
}
