package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/portrussell/marina-go/internal/crypto"
	"github.com/portrussell/marina-go/internal/model"
	"github.com/portrussell/marina-go/internal/repository"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password,
// so a caller cannot tell which half failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles authentication business logic.
type AuthService struct {
	users     UserStore
	jwtSecret string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{users: users, jwtSecret: secret}
}

// Login authenticates a user and mints an identity token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	verr := &model.ValidationError{}
	if !validEmail(req.Email) {
		verr.Add("email", "must be a valid email address")
	}
	if req.Password == "" {
		verr.Add("password", "is required")
	}
	if !verr.Empty() {
		return model.LoginResponse{}, verr
	}

	user, err := s.users.GetByEmail(ctx, foldEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.LoginResponse{}, ErrInvalidCredentials
		}
		return model.LoginResponse{}, err
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return model.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, user.Role, s.jwtSecret)
	if err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{
		Message: "login successful",
		Token:   token,
		User: model.LoginProfile{
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}

// Profile returns the profile of an authenticated user.
func (s *AuthService) Profile(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}
	return userToResponse(user), nil
}

// foldEmail normalizes an email for lookup and storage.
func foldEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	_, err := mail.ParseAddress(email)
	return err == nil
}
