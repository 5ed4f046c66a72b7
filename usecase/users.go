package usecase

import (
	"context"
	"strings"
	"time"

	"main/model"
	"main/services"
	"main/utils"

	"github.com/google/uuid"
)

// UserRepository is the persistence port the credential manager needs.
type UserRepository interface {
	Insert(ctx context.Context, user *model.User) error
	FindByName(ctx context.Context, name string) (*model.User, error)
	FindNamesByIDs(ctx context.Context, userIDs []string) (map[string]string, error)
}

type UserService struct {
	Users UserRepository
}

// Register creates a user with a hashed password and returns a signed
// session token. Identity is immutable after this point.
func (s *UserService) Register(ctx context.Context, name, password, role string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ValidationError("name is required")
	}
	if password == "" {
		return "", ValidationError("password is required")
	}
	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleUser && role != model.RoleAdmin {
		return "", ValidationError("role must be user or admin")
	}

	existing, err := s.Users.FindByName(ctx, name)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrDuplicateUser
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		UserID:    uuid.NewString(),
		Name:      name,
		Password:  hashed,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if err := s.Users.Insert(ctx, user); err != nil {
		return "", err
	}

	utils.TrackAuthAttempt("success", "register")
	return services.GenerateToken(user)
}

// Login verifies credentials and issues a fresh token with the same claim
// shape as registration.
func (s *UserService) Login(ctx context.Context, name, password string) (string, *model.User, error) {
	user, err := s.Users.FindByName(ctx, name)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "login")
		return "", nil, ErrUserNotFound
	}

	if !services.ComparePasswords(user.Password, password) {
		utils.TrackAuthAttempt("failure", "login")
		return "", nil, ErrInvalidCredentials
	}

	token, err := services.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}

	utils.TrackAuthAttempt("success", "login")
	return token, user, nil
}
