package service

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tasklite/task-service/internal/apperrors"
	"github.com/tasklite/task-service/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// WelcomeMailer sends the post-registration welcome email.
type WelcomeMailer interface {
	Enabled() bool
	SendWelcome(to, username string) error
}

// AuthService handles registration and credential checks
type AuthService struct {
	users  UserStore
	log    *logrus.Logger
	mailer WelcomeMailer
}

// NewAuthService initializes a new auth service. mailer may be nil.
func NewAuthService(users UserStore, log *logrus.Logger, mailer WelcomeMailer) *AuthService {
	return &AuthService{users: users, log: log, mailer: mailer}
}

// Register creates a new user with a hashed password
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return nil, apperrors.Validation("username is required")
	}
	if email == "" {
		return nil, apperrors.Validation("email is required")
	}
	if password == "" {
		return nil, apperrors.Validation("password is required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	if s.mailer != nil && s.mailer.Enabled() {
		// Mail failures are logged by the sender and never fail registration.
		_ = s.mailer.SendWelcome(user.Email, user.Username)
	}

	s.log.Infof("User registered: %s", user.Username)
	return user, nil
}

// Login verifies credentials and returns the matching user
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, apperrors.Authentication("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Authentication("invalid credentials")
	}

	s.log.Infof("User logged in: %s", user.Username)
	return user, nil
}
