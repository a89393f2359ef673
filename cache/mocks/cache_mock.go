package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zlnvch/noteverse/models"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetUser(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockCache) SetUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
