package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/brightsmile/clinic-api/internal/domain/entity"
	repo "github.com/brightsmile/clinic-api/internal/domain/repository"
	"github.com/brightsmile/clinic-api/pkg/helpers"
	"github.com/brightsmile/clinic-api/pkg/mailer"
)

var (
	// ErrUserNotFound means no account exists for the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials means the account exists but the password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountService handles registration and password login.
type AccountService struct {
	Users       repo.UserRepository
	JWT         *helpers.JWTManager
	Pub         *helpers.RabbitPublisher
	Logger      *logrus.Logger
	MailEnabled bool
}

func NewAccountService(users repo.UserRepository, jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger, mailEnabled bool) *AccountService {
	return &AccountService{Users: users, JWT: jwt, Pub: pub, Logger: logger, MailEnabled: mailEnabled}
}

// Register hashes the password and inserts the account. Duplicate emails
// surface as repository.ErrDuplicateEmail. A welcome email job is enqueued
// best-effort when mail sending is enabled.
func (s *AccountService) Register(ctx context.Context, email, password string) (*repo.InsertResult, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	res, err := s.Users.Insert(ctx, &entity.User{Email: email, Password: hash})
	if err != nil {
		return nil, err
	}
	if s.Pub != nil && s.MailEnabled {
		job := mailer.EmailJob{
			To:      email,
			Subject: "Welcome to the clinic",
			Text:    "Your account has been created. You can now log in and manage your appointments.",
		}
		if pErr := s.Pub.PublishJSON(ctx, job); pErr != nil && s.Logger != nil {
			s.Logger.WithError(pErr).WithField("email", email).Warn("welcome email enqueue failed")
		}
	}
	return res, nil
}

// Login verifies the password and issues a session token. Unknown emails and
// wrong passwords are distinguished so the handler can map them to 404 and
// 401 respectively.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	token, _, err := s.JWT.Generate(u.ID.Hex(), u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("generate token failed")
		}
		return "", err
	}
	return token, nil
}
