package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zlnvch/noteverse/models"
	"github.com/zlnvch/noteverse/store"
	"golang.org/x/crypto/bcrypt"
)

// Sessions are stateless: validity comes from the signature and expiry alone,
// so logout cannot revoke an already-copied token before it expires.
const sessionValidity = 7 * 24 * time.Hour

// Register creates a new user and mints a session token for it. The password
// is stored only as a bcrypt hash.
func (s *Service) Register(ctx context.Context, email string, password string, name string) (models.User, string, error) {
	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)
	if err := validateRegistration(email, password, name); err != nil {
		return models.User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := s.Store.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	})
	if err != nil {
		if errors.Is(err, store.ErrItemExists) {
			return models.User{}, "", ErrEmailTaken
		}
		return models.User{}, "", fmt.Errorf("create user failed: %w", err)
	}

	token, err := s.CreateJWT(user.Id, user.Email)
	if err != nil {
		return models.User{}, "", fmt.Errorf("token generation failed: %w", err)
	}

	s.Cache.SetUser(ctx, user)

	return user, token, nil
}

// Login verifies the credentials and mints a fresh session token. Unknown
// email and wrong password return the same error.
func (s *Service) Login(ctx context.Context, email string, password string) (models.User, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, "", errValidation("Email and password required")
	}

	user, err := s.Store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", fmt.Errorf("get user failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.CreateJWT(user.Id, user.Email)
	if err != nil {
		return models.User{}, "", fmt.Errorf("token generation failed: %w", err)
	}

	s.Cache.SetUser(ctx, user)

	return user, token, nil
}

// GetCurrentUser resolves a verified identity back to its user record, cache
// first. A valid token whose user no longer exists yields ErrNotFound.
func (s *Service) GetCurrentUser(ctx context.Context, ident models.Identity) (models.User, error) {
	if user, err := s.Cache.GetUser(ctx, ident.Email); err == nil {
		return user, nil
	}

	user, err := s.Store.GetUserByEmail(ctx, ident.Email)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("get user failed: %w", err)
	}

	s.Cache.SetUser(ctx, user)

	return user, nil
}

func (s *Service) CreateJWT(userId string, email string) (string, error) {
	claims := jwt.MapClaims{
		"id":    userId,
		"email": email,
		"exp":   time.Now().Add(sessionValidity).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

// VerifyJWT checks the signature and expiry and returns the embedded identity.
// Callers treat every failure as an undifferentiated authentication failure.
func (s *Service) VerifyJWT(tokenString string) (models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return s.JWTSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Identity{}, err
	}

	if !token.Valid {
		return models.Identity{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, errors.New("invalid token claims")
	}

	userId, ok := claims["id"].(string)
	if !ok {
		return models.Identity{}, errors.New("missing id claim")
	}

	email, ok := claims["email"].(string)
	if !ok {
		return models.Identity{}, errors.New("missing email claim")
	}

	return models.Identity{UserId: userId, Email: email}, nil
}
