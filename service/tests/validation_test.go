package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zlnvch/noteverse/models"
	"github.com/zlnvch/noteverse/service"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a@x.com", "a@x.com"},
		{"A@X.COM", "a@x.com"},
		{"  a@x.com  ", "a@x.com"},
		{"\tMixed@Case.Org ", "mixed@case.org"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, service.NormalizeEmail(c.in))
	}
}

// Case and whitespace variants of one address must hit the same store key, so
// a second registration with a differently-spelled email still collides.
func TestRegister_NormalizesEmailForStore(t *testing.T) {
	svc, mockStore, mockCache := setupService(t)
	ctx := context.Background()

	created := models.User{Id: "user1", Email: "a@x.com", Name: "A"}
	mockStore.On("CreateUser", ctx, mock.MatchedBy(func(u models.User) bool {
		return u.Email == "a@x.com"
	})).Return(created, nil)
	mockCache.On("SetUser", ctx, created).Return(nil)

	_, _, err := svc.Register(ctx, "  A@X.COM ", "secret1", "A")
	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestRegister_RejectsInvalidEmail(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	var ve *service.ValidationError

	for _, email := range []string{"not-an-email", "a@b", "a b@x.com", "@x.com"} {
		_, _, err := svc.Register(ctx, email, "secret1", "A")
		assert.ErrorAs(t, err, &ve, "email %q should be rejected", email)
	}

	mockStore.AssertNotCalled(t, "CreateUser")
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	var ve *service.ValidationError

	_, _, err := svc.Register(ctx, "a@x.com", "12345", "A")
	assert.ErrorAs(t, err, &ve)

	mockStore.AssertNotCalled(t, "CreateUser")
}

func TestLogin_RequiresBothFields(t *testing.T) {
	svc, mockStore, _ := setupService(t)
	ctx := context.Background()

	var ve *service.ValidationError

	_, _, err := svc.Login(ctx, "", "secret1")
	assert.ErrorAs(t, err, &ve)

	_, _, err = svc.Login(ctx, "a@x.com", "")
	assert.ErrorAs(t, err, &ve)

	mockStore.AssertNotCalled(t, "GetUserByEmail")
}
