package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zlnvch/noteverse/models"
	"github.com/zlnvch/noteverse/store"
)

// Every operation here takes the owner id from the caller's verified identity
// and hands it to the store, where it is part of the lookup key. A note owned
// by someone else is therefore never fetched and then rejected; it is simply
// not found.

func (s *Service) CreateNote(ctx context.Context, ownerId string, title string, content string) (models.Note, error) {
	title = strings.TrimSpace(title)
	if err := validateNoteFields(title, content); err != nil {
		return models.Note{}, err
	}

	note, err := s.Store.CreateNote(ctx, ownerId, title, content)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note failed: %w", err)
	}

	return note, nil
}

func (s *Service) ListNotes(ctx context.Context, ownerId string) ([]models.Note, error) {
	notes, err := s.Store.GetOwnerNotes(ctx, ownerId)
	if err != nil {
		return nil, fmt.Errorf("list notes failed: %w", err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

func (s *Service) GetNote(ctx context.Context, ownerId string, noteId string) (models.Note, error) {
	note, err := s.Store.GetNote(ctx, ownerId, noteId)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return models.Note{}, ErrNotFound
		}
		return models.Note{}, fmt.Errorf("get note failed: %w", err)
	}

	return note, nil
}

func (s *Service) UpdateNote(ctx context.Context, ownerId string, noteId string, title string, content string) (models.Note, error) {
	title = strings.TrimSpace(title)
	if err := validateNoteFields(title, content); err != nil {
		return models.Note{}, err
	}

	note, err := s.Store.UpdateNote(ctx, ownerId, noteId, title, content)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return models.Note{}, ErrNotFound
		}
		return models.Note{}, fmt.Errorf("update note failed: %w", err)
	}

	return note, nil
}

func (s *Service) DeleteNote(ctx context.Context, ownerId string, noteId string) error {
	err := s.Store.DeleteNote(ctx, ownerId, noteId)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete note failed: %w", err)
	}

	return nil
}
