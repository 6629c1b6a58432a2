package main

import (
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// MockSNSClient records every publish request it receives, optionally failing
// each one with a preset error. Shaped like MockBucketClient so tests can
// inspect exactly what would have gone out on the wire.
type MockSNSClient struct {
	PublishRequests []*sns.PublishInput
	publishErr      error
	lock            sync.Mutex
}

func NewMockSNSClient() *MockSNSClient {
	return &MockSNSClient{PublishRequests: make([]*sns.PublishInput, 0)}
}

func NewFailingMockSNSClient(err error) *MockSNSClient {
	client := NewMockSNSClient()
	client.publishErr = err
	return client
}

func (c *MockSNSClient) PublishMessage(msg *sns.PublishInput) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.PublishRequests = append(c.PublishRequests, msg)
	return c.publishErr
}
