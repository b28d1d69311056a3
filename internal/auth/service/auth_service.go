package service

import (
	"context"
	"errors"

	"github.com/AlibekovAA/notes-api/internal/common/clock"
	commoncrypto "github.com/AlibekovAA/notes-api/internal/common/crypto"
	"github.com/AlibekovAA/notes-api/internal/common/logger"
	userdomain "github.com/AlibekovAA/notes-api/internal/user/domain"
	userrepo "github.com/AlibekovAA/notes-api/internal/user/repository"
)

type AccessTokenIssuer interface {
	Issue(user userdomain.User) (string, error)
}

type AuthService struct {
	repo        userrepo.Repository
	hasher      commoncrypto.PasswordHasher
	idGenerator commoncrypto.IDGenerator
	issuer      AccessTokenIssuer
	clock       clock.Clock
	log         *logger.Logger
}

func NewAuthService(
	repo userrepo.Repository,
	hasher commoncrypto.PasswordHasher,
	idGenerator commoncrypto.IDGenerator,
	issuer AccessTokenIssuer,
	clk clock.Clock,
	log *logger.Logger,
) *AuthService {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &AuthService{
		repo:        repo,
		hasher:      hasher,
		idGenerator: idGenerator,
		issuer:      issuer,
		clock:       clk,
		log:         log,
	}
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) error {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "register_attempt",
	}).Info("register attempt")

	if err := validateCredentials(input.Username, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_validation_failed",
		}).Warnf("register validation failed: %v", err)
		recordRegistration("invalid")
		return err
	}

	_, err := s.repo.FindByUsername(ctx, input.Username)
	switch {
	case err == nil:
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_username_exists",
		}).Warn("register failed: already exists")
		recordRegistration("exists")
		return ErrUserExists
	case !errors.Is(err, userrepo.ErrUserNotFound):
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_lookup_failed",
		}).Errorf("register failed: lookup error: %v", err)
		recordRegistration("error")
		return newInternalError("DB_ERROR", "failed to look up user", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_hash_failed",
		}).Errorf("register failed: password hash error: %v", err)
		recordRegistration("error")
		return newInternalError("HASH_FAILED", "failed to hash password", err)
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_id_generation_failed",
		}).Errorf("register failed: id generation error: %v", err)
		recordRegistration("error")
		return newInternalError("ID_GENERATION_FAILED", "failed to generate user id", err)
	}

	user := userdomain.User{
		ID:           userdomain.ID(id),
		Username:     input.Username,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// A concurrent registration can win between the lookup and the insert.
		if errors.Is(err, userrepo.ErrUsernameAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "register_username_exists",
			}).Warn("register failed: already exists")
			recordRegistration("exists")
			return ErrUserExists
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_create_failed",
		}).Errorf("register failed: %v", err)
		recordRegistration("error")
		return newInternalError("DB_ERROR", "failed to create user", err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"user_id":  string(user.ID),
		"action":   "register_success",
	}).Info("register success")
	recordRegistration("success")

	return nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "login_attempt",
	}).Info("login attempt")

	if err := validateCredentials(input.Username, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_validation_failed",
		}).Warnf("login validation failed: %v", err)
		recordLogin("invalid")
		return LoginResult{}, err
	}

	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "login_user_not_found",
			}).Warn("login failed: not found")
			recordLogin("not_found")
			return LoginResult{}, ErrUserNotFound
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		recordLogin("error")
		return LoginResult{}, newInternalError("DB_ERROR", "failed to fetch user", err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_invalid_password",
		}).Warn("login failed: invalid password")
		recordLogin("invalid_credentials")
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"user_id":  string(user.ID),
			"action":   "login_token_issue_failed",
		}).Errorf("login failed: token issue error: %v", err)
		recordLogin("error")
		return LoginResult{}, newInternalError("TOKEN_ISSUE_FAILED", "failed to issue token", err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"user_id":  string(user.ID),
		"action":   "login_success",
	}).Info("login success")
	recordLogin("success")

	return LoginResult{Token: token}, nil
}
