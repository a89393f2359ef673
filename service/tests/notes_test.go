package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zlnvch/noteverse/models"
	"github.com/zlnvch/noteverse/service"
	"github.com/zlnvch/noteverse/store"
)

func TestCreateNote_Success(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	created := models.Note{
		Id:      "note1",
		OwnerId: "user1",
		Title:   "Groceries",
		Content: "milk, eggs",
		Created: 1000,
		Updated: 1000,
	}
	// Title is trimmed before it reaches the store
	mockStore.On("CreateNote", ctx, "user1", "Groceries", "milk, eggs").Return(created, nil)

	note, err := svc.CreateNote(ctx, "user1", "  Groceries  ", "milk, eggs")
	assert.NoError(t, err)
	assert.Equal(t, created, note)
}

func TestCreateNote_MissingFields(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	var ve *service.ValidationError

	_, err := svc.CreateNote(ctx, "user1", "", "content")
	assert.ErrorAs(t, err, &ve)

	_, err = svc.CreateNote(ctx, "user1", "title", "")
	assert.ErrorAs(t, err, &ve)

	_, err = svc.CreateNote(ctx, "user1", "   ", "content")
	assert.ErrorAs(t, err, &ve)

	mockStore.AssertNotCalled(t, "CreateNote")
}

func TestGetNote_Success(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	note := models.Note{Id: "note1", OwnerId: "user1", Title: "t", Content: "c"}
	mockStore.On("GetNote", ctx, "user1", "note1").Return(note, nil)

	gotNote, err := svc.GetNote(ctx, "user1", "note1")
	assert.NoError(t, err)
	assert.Equal(t, note, gotNote)
}

// A note owned by someone else and a note that does not exist both come back
// from the owner-keyed store lookup as ErrItemNotFound, so the service must
// return the exact same error for both.
func TestGetNote_AbsentAndForeignIndistinguishable(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	// "other-note" exists but belongs to user2; from user1's partition both
	// lookups miss identically
	mockStore.On("GetNote", ctx, "user1", "no-such-note").Return(models.Note{}, store.ErrItemNotFound)
	mockStore.On("GetNote", ctx, "user1", "other-note").Return(models.Note{}, store.ErrItemNotFound)

	_, errAbsent := svc.GetNote(ctx, "user1", "no-such-note")
	_, errForeign := svc.GetNote(ctx, "user1", "other-note")

	assert.ErrorIs(t, errAbsent, service.ErrNotFound)
	assert.Equal(t, errAbsent, errForeign)
}

func TestListNotes_PreservesStoreOrder(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	// Store returns newest first; the service must not reorder
	notes := []models.Note{
		{Id: "note3", OwnerId: "user1", Created: 3000},
		{Id: "note2", OwnerId: "user1", Created: 2000},
		{Id: "note1", OwnerId: "user1", Created: 1000},
	}
	mockStore.On("GetOwnerNotes", ctx, "user1").Return(notes, nil)

	gotNotes, err := svc.ListNotes(ctx, "user1")
	assert.NoError(t, err)
	assert.Equal(t, notes, gotNotes)
}

func TestListNotes_EmptyIsNotNil(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	mockStore.On("GetOwnerNotes", ctx, "user1").Return([]models.Note(nil), nil)

	gotNotes, err := svc.ListNotes(ctx, "user1")
	assert.NoError(t, err)
	assert.NotNil(t, gotNotes)
	assert.Empty(t, gotNotes)
}

func TestUpdateNote_Success(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	updated := models.Note{
		Id:      "note1",
		OwnerId: "user1",
		Title:   "new title",
		Content: "new content",
		Created: 1000,
		Updated: 2000,
	}
	mockStore.On("UpdateNote", ctx, "user1", "note1", "new title", "new content").Return(updated, nil)

	note, err := svc.UpdateNote(ctx, "user1", "note1", "new title", "new content")
	assert.NoError(t, err)
	assert.Equal(t, updated, note)
	assert.Greater(t, note.Updated, note.Created)
}

func TestUpdateNote_MissingFields(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	var ve *service.ValidationError

	_, err := svc.UpdateNote(ctx, "user1", "note1", "", "content")
	assert.ErrorAs(t, err, &ve)

	_, err = svc.UpdateNote(ctx, "user1", "note1", "title", "")
	assert.ErrorAs(t, err, &ve)

	// The note is untouched when validation fails
	mockStore.AssertNotCalled(t, "UpdateNote")
}

func TestUpdateNote_NotFound(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	mockStore.On("UpdateNote", ctx, "user1", "note1", "title", "content").
		Return(models.Note{}, store.ErrItemNotFound)

	_, err := svc.UpdateNote(ctx, "user1", "note1", "title", "content")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteNote_Success(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	mockStore.On("DeleteNote", ctx, "user1", "note1").Return(nil)

	err := svc.DeleteNote(ctx, "user1", "note1")
	assert.NoError(t, err)
}

func TestDeleteNote_NotFound(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	mockStore.On("DeleteNote", ctx, "user1", "note1").Return(store.ErrItemNotFound)

	err := svc.DeleteNote(ctx, "user1", "note1")
	assert.ErrorIs(t, err, service.ErrNotFound)
}
