package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zlnvch/noteverse/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockStore) CreateNote(ctx context.Context, ownerId string, title string, content string) (models.Note, error) {
	args := m.Called(ctx, ownerId, title, content)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockStore) GetNote(ctx context.Context, ownerId string, noteId string) (models.Note, error) {
	args := m.Called(ctx, ownerId, noteId)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockStore) GetOwnerNotes(ctx context.Context, ownerId string) ([]models.Note, error) {
	args := m.Called(ctx, ownerId)
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockStore) UpdateNote(ctx context.Context, ownerId string, noteId string, title string, content string) (models.Note, error) {
	args := m.Called(ctx, ownerId, noteId, title, content)
	return args.Get(0).(models.Note), args.Error(1)
}

func (m *MockStore) DeleteNote(ctx context.Context, ownerId string, noteId string) error {
	args := m.Called(ctx, ownerId, noteId)
	return args.Error(0)
}
