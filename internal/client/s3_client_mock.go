package client

import (
	"context"
	"sync"
)

// MockS3Client is an in-memory ObjectStore for testing without AWS credentials
type MockS3Client struct {
	BucketName string

	// Optional function overrides for custom test behavior
	PutObjectFunc func(ctx context.Context, key string, body []byte, contentType string) error
	GetObjectFunc func(ctx context.Context, key string) ([]byte, error)

	mu      sync.Mutex
	objects map[string][]byte
	puts    int
}

// NewMockS3Client creates a new mock S3 client for testing
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		BucketName: "test-bucket",
		objects:    make(map[string][]byte),
	}
}

// Bucket returns the mock bucket name
func (m *MockS3Client) Bucket() string {
	return m.BucketName
}

// PutObject stores a copy of body under key
func (m *MockS3Client) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, key, body, contentType)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), body...)
	m.puts++
	return nil
}

// GetObject returns the stored object or ErrObjectNotFound
func (m *MockS3Client) GetObject(ctx context.Context, key string) ([]byte, error) {
	if m.GetObjectFunc != nil {
		return m.GetObjectFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return append([]byte(nil), data...), nil
}

// PutCount reports how many successful uploads the mock has seen
func (m *MockS3Client) PutCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}
