package user

import (
	"auction-backend/internal/auctionerrors"
	"auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/utils"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps Login doing a bcrypt comparison even when the email is
// unknown, so response timing does not leak account existence.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// TokenGenerator issues signed authentication tokens.
type TokenGenerator interface {
	Generate(userID string) (string, error)
}

// UserService implements registration, login and profile lookup.
type UserService struct {
	repo   repository.AuctionDB
	tokens TokenGenerator
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.AuctionDB, tokens TokenGenerator) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
	}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *UserService) Register(username, email, password, confirmPassword string) (models.User, error) {
	if username == "" || email == "" || password == "" || confirmPassword == "" {
		return models.User{}, fmt.Errorf("service: %w - all fields are required", auctionerrors.ErrValidation)
	}
	if password != confirmPassword {
		return models.User{}, fmt.Errorf("service: %w - passwords do not match", auctionerrors.ErrValidation)
	}

	email = strings.ToLower(email)
	if _, err := s.repo.GetUserByEmail(email); err == nil {
		return models.User{}, fmt.Errorf("service: register %s: %w", email, auctionerrors.ErrUserExists)
	} else if !errors.Is(err, auctionerrors.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("service: failed to check existing user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	u := models.User{
		UserID:    utils.GenerateID(),
		Username:  username,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateUser(u); err != nil {
		if errors.Is(err, auctionerrors.ErrUserExists) {
			return models.User{}, fmt.Errorf("service: register %s: %w", email, auctionerrors.ErrUserExists)
		}
		return models.User{}, fmt.Errorf("service: failed to create user: %w", err)
	}
	return u, nil
}

// Login authenticates a user and returns a signed token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Login(email, password string) (models.User, string, error) {
	if email == "" || password == "" {
		return models.User{}, "", fmt.Errorf("service: %w - all fields are required", auctionerrors.ErrValidation)
	}

	u, lookupErr := s.repo.GetUserByEmail(strings.ToLower(email))

	hash := dummyHash
	if lookupErr == nil {
		hash = u.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if lookupErr != nil || compareErr != nil {
		return models.User{}, "", fmt.Errorf("service: login: %w", auctionerrors.ErrInvalidCredentials)
	}

	token, err := s.tokens.Generate(u.UserID)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: failed to generate token: %w", err)
	}
	return u, token, nil
}

// Profile returns the user record behind an authenticated identity.
func (s *UserService) Profile(userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrValidation)
	}

	u, err := s.repo.GetUser(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return u, nil
}
