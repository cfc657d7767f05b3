package mocks

import (
	"context"

	"search-provisioner/core/search"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of search.Client
type Client struct {
	mock.Mock
}

func (m *Client) Upsert(ctx context.Context, req search.Request) search.Outcome {
	args := m.Called(ctx, req)
	return args.Get(0).(search.Outcome)
}

// FailureSink is a mock implementation of search.FailureSink
type FailureSink struct {
	mock.Mock
}

func (m *FailureSink) Record(kind search.ResourceKind, name string, detail []byte) (string, error) {
	args := m.Called(kind, name, detail)
	return args.String(0), args.Error(1)
}
