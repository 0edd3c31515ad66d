// Package auth implements registration and login on top of the user
// repository and the token service.
package auth

import (
	"context"
	"time"

	"streaming-backend/internal/domain"
	"streaming-backend/internal/repository"
	"streaming-backend/pkg/api"
	pkgauth "streaming-backend/pkg/auth"
	appErrors "streaming-backend/pkg/errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// invalidCredentialsMsg is returned for unknown emails and wrong passwords
// alike, so a caller cannot probe which addresses are registered.
const invalidCredentialsMsg = "e-mail ou senha inválidos"

// Service implements the registration and login use cases.
type Service struct {
	users    repository.UserRepository
	tokens   *pkgauth.TokenService
	logger   *zap.Logger
	validate *validator.Validate
}

// NewService creates a new auth service.
func NewService(users repository.UserRepository, tokens *pkgauth.TokenService, logger *zap.Logger) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		logger:   logger,
		validate: validator.New(),
	}
}

// Register creates a new user account. Duplicate emails are rejected with a
// conflict; the returned user carries public fields only (the hash stays in
// the repository layer).
func (s *Service) Register(ctx context.Context, req api.RegisterRequest) (*domain.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.NewValidation(`campos "email", "nome" e "senha" são obrigatórios`)
	}

	hash, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.NewInternal("failed to hash password", err)
	}

	user := &domain.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsConflict(err) {
			return nil, appErrors.NewConflict("um usuário com este e-mail já existe")
		}
		return nil, appErrors.Wrap(err, "failed to create user")
	}

	s.logger.Info("user registered", zap.String("email", user.Email))
	return user, nil
}

// Login verifies the credentials and issues a signed bearer token embedding
// the user's email and name.
func (s *Service) Login(ctx context.Context, req api.LoginRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", appErrors.NewValidation(`campos "email" e "senha" são obrigatórios`)
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if repository.IsNotFound(err) {
			return "", appErrors.NewUnauthorized(invalidCredentialsMsg)
		}
		return "", appErrors.Wrap(err, "failed to look up user")
	}

	if !pkgauth.CheckPassword(req.Password, user.PasswordHash) {
		return "", appErrors.NewUnauthorized(invalidCredentialsMsg)
	}

	token, err := s.tokens.Sign(user.Email, user.Name)
	if err != nil {
		return "", appErrors.NewInternal("failed to sign token", err)
	}

	s.logger.Info("user logged in", zap.String("email", user.Email))
	return token, nil
}
