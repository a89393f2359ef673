package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gofrs/uuid/v5"

	"github.com/zlnvch/noteverse/models"
)

type DynamoNoteverseStore struct {
	client    *dynamodb.Client
	tableName string
}

func NewDynamoNoteverseStore(ctx context.Context, devMode bool, dynamodbEndpoint string, tableName string) (*DynamoNoteverseStore, error) {
	client, err := newDynamoDBClient(context.Background(), devMode, dynamodbEndpoint)
	if err != nil {
		return nil, err
	}

	tables, err := getTables(client, ctx)
	if err != nil {
		return nil, err
	}

	foundTable := false
	for _, table := range tables {
		if table == tableName {
			foundTable = true
			break
		}
	}
	if !foundTable {
		return nil, fmt.Errorf("given table name '%s' not found in dynamodb", tableName)
	}

	return &DynamoNoteverseStore{client: client, tableName: tableName}, nil
}

// CreateUser persists a new user record. The email-derived partition key plus
// the conditional put make registration fail with store.ErrItemExists when the
// email is already taken, without a separate existence check.
func (dynamoStore *DynamoNoteverseStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	userId, err := uuid.NewV4()
	if err != nil {
		return models.User{}, err
	}
	user.Id = userId.String()

	du := userToDynamo(user)
	du.Created = time.Now().UnixMilli()
	du, err = putNewItem(dynamoStore, ctx, du)
	if err != nil {
		return models.User{}, err
	}

	return userFromDynamo(du), nil
}

func (dynamoStore *DynamoNoteverseStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	du, err := getItem[dynamoUser](dynamoStore, ctx, userPK(email), "PROFILE", false)
	if err != nil {
		return models.User{}, err
	}

	return userFromDynamo(du), nil
}

// CreateNote persists a new note under the owner's partition. Note ids are
// UUIDv7, so the sort key orders notes by creation time.
func (dynamoStore *DynamoNoteverseStore) CreateNote(ctx context.Context, ownerId string, title string, content string) (models.Note, error) {
	noteId, err := newNoteId()
	if err != nil {
		return models.Note{}, err
	}

	now := time.Now().UnixMilli()
	dn := dynamoNote{
		PK:      notePK(ownerId),
		SK:      noteId,
		OwnerId: ownerId,
		Title:   title,
		Content: content,
		Created: now,
		Updated: now,
	}

	dn, err = putNewItem(dynamoStore, ctx, dn)
	if err != nil {
		return models.Note{}, err
	}

	return noteFromDynamo(dn), nil
}

// GetNote looks a note up by owner and id. Ownership is part of the key, so a
// note belonging to another user is indistinguishable from one that does not
// exist.
func (dynamoStore *DynamoNoteverseStore) GetNote(ctx context.Context, ownerId string, noteId string) (models.Note, error) {
	dn, err := getItem[dynamoNote](dynamoStore, ctx, notePK(ownerId), noteId, false)
	if err != nil {
		return models.Note{}, err
	}

	return noteFromDynamo(dn), nil
}

// GetOwnerNotes returns the owner's notes, newest first (ScanIndexForward: false
// walks the UUIDv7 sort keys in reverse creation order).
func (dynamoStore *DynamoNoteverseStore) GetOwnerNotes(ctx context.Context, ownerId string) ([]models.Note, error) {
	dynamoNotes, err := queryAllByPK[dynamoNote](dynamoStore, ctx, notePK(ownerId), false, 0)
	if err != nil {
		return nil, err
	}

	notes := make([]models.Note, 0, len(dynamoNotes))
	for _, dn := range dynamoNotes {
		notes = append(notes, noteFromDynamo(dn))
	}

	return notes, nil
}

func (dynamoStore *DynamoNoteverseStore) UpdateNote(ctx context.Context, ownerId string, noteId string, title string, content string) (models.Note, error) {
	dn := dynamoNote{
		PK:      notePK(ownerId),
		SK:      noteId,
		Title:   title,
		Content: content,
		Updated: time.Now().UnixMilli(),
	}

	dn, err := updateItem(dynamoStore, ctx, dn, []string{"Title", "Content", "Updated"})
	if err != nil {
		return models.Note{}, err
	}

	return noteFromDynamo(dn), nil
}

func (dynamoStore *DynamoNoteverseStore) DeleteNote(ctx context.Context, ownerId string, noteId string) error {
	return deleteExistingItem(dynamoStore, ctx, notePK(ownerId), noteId)
}

func newNoteId() (string, error) {
	noteId, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return noteId.String(), nil
}
