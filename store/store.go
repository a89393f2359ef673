package store

import (
	"context"
	"errors"

	"github.com/zlnvch/noteverse/models"
)

type NoteverseStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	CreateNote(ctx context.Context, ownerId string, title string, content string) (models.Note, error)
	GetNote(ctx context.Context, ownerId string, noteId string) (models.Note, error)
	GetOwnerNotes(ctx context.Context, ownerId string) ([]models.Note, error)
	UpdateNote(ctx context.Context, ownerId string, noteId string, title string, content string) (models.Note, error)
	DeleteNote(ctx context.Context, ownerId string, noteId string) error
}

// Custom error types for clarity
var (
	ErrItemNotFound = errors.New("item does not exist")
	ErrItemExists   = errors.New("item already exists")
)
