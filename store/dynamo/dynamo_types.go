package dynamo

import (
	"github.com/zlnvch/noteverse/models"
)

type dynamoUser struct {
	PK           string `dynamodbav:"PK"`
	SK           string `dynamodbav:"SK"`
	Id           string `dynamodbav:"Id"`
	Email        string `dynamodbav:"Email"`
	PasswordHash string `dynamodbav:"PasswordHash"`
	Name         string `dynamodbav:"Name"`
	Created      int64  `dynamodbav:"Created"`
}

// Map domain User -> Dynamo
// Users are keyed by their normalized email, so the conditional put in
// putNewItem doubles as the unique-email index.
func userToDynamo(u models.User) dynamoUser {
	return dynamoUser{
		PK:           userPK(u.Email),
		SK:           "PROFILE",
		Id:           u.Id,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Created:      u.Created,
	}
}

// Map Dynamo -> domain User
func userFromDynamo(du dynamoUser) models.User {
	return models.User{
		Id:           du.Id,
		Email:        du.Email,
		PasswordHash: du.PasswordHash,
		Name:         du.Name,
		Created:      du.Created,
	}
}

type dynamoNote struct {
	PK      string `dynamodbav:"PK"`
	SK      string `dynamodbav:"SK"`
	OwnerId string `dynamodbav:"OwnerId"`
	Title   string `dynamodbav:"Title"`
	Content string `dynamodbav:"Content"`
	Created int64  `dynamodbav:"Created"`
	Updated int64  `dynamodbav:"Updated"`
}

// Map Dynamo -> domain Note
// The partition key carries the owner, the sort key is the note's UUIDv7 id.
func noteFromDynamo(dn dynamoNote) models.Note {
	return models.Note{
		Id:      dn.SK,
		OwnerId: dn.OwnerId,
		Title:   dn.Title,
		Content: dn.Content,
		Created: dn.Created,
		Updated: dn.Updated,
	}
}

func userPK(email string) string {
	return "USER#" + email
}

func notePK(ownerId string) string {
	return "NOTE#" + ownerId
}
