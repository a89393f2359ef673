package models

type User struct {
	Id           string
	Email        string
	PasswordHash string
	Name         string
	Created      int64
}

// PublicUser is the user shape returned to clients. The credential hash never
// leaves the service.
type PublicUser struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u User) PublicView() PublicUser {
	return PublicUser{
		Id:    u.Id,
		Email: u.Email,
		Name:  u.Name,
	}
}

type Note struct {
	Id      string `json:"id"`
	OwnerId string `json:"userId"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Created int64  `json:"createdAt"`
	Updated int64  `json:"updatedAt"`
}

// Identity is the verified caller extracted from a session token. The auth
// middleware binds it into the request context; every note operation is scoped
// by its UserId.
type Identity struct {
	UserId string
	Email  string
}
