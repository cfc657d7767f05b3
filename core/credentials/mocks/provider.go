package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Provider is a mock implementation of credentials.Provider
type Provider struct {
	mock.Mock
}

func (m *Provider) GetAdminKey(ctx context.Context, resourceGroup, serviceName string) (string, error) {
	args := m.Called(ctx, resourceGroup, serviceName)
	return args.String(0), args.Error(1)
}
