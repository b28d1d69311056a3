package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/AlibekovAA/notes-api/internal/auth/service"
	"github.com/AlibekovAA/notes-api/internal/common/clock"
	commoncrypto "github.com/AlibekovAA/notes-api/internal/common/crypto"
	commonerrors "github.com/AlibekovAA/notes-api/internal/common/errors"
	"github.com/AlibekovAA/notes-api/internal/common/logger"
	userdomain "github.com/AlibekovAA/notes-api/internal/user/domain"
	userrepo "github.com/AlibekovAA/notes-api/internal/user/repository"
)

func setupAuthService(repo userrepo.Repository, hasher commoncrypto.PasswordHasher) (*service.AuthService, *mockIssuer) {
	issuer := &mockIssuer{}
	svc := service.NewAuthService(
		repo,
		hasher,
		&mockIDGenerator{},
		issuer,
		clock.NewMockClock(testNow),
		logger.Discard(),
	)
	return svc, issuer
}

func TestAuthService_Register_Success(t *testing.T) {
	var created userdomain.User
	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user userdomain.User) error {
			created = user
			return nil
		},
	}
	svc, _ := setupAuthService(repo, &mockHasher{})

	if err := svc.Register(context.Background(), service.RegisterInput{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if created.ID != "user-123" {
		t.Errorf("expected generated id, got %s", created.ID)
	}
	if created.Username != "alice" {
		t.Errorf("expected username alice, got %s", created.Username)
	}
	if created.PasswordHash != "hashed:pw1" {
		t.Errorf("expected hashed password, got %s", created.PasswordHash)
	}
	if !created.CreatedAt.Equal(testNow) {
		t.Errorf("expected createdAt %v, got %v", testNow, created.CreatedAt)
	}
}

func TestAuthService_Register_StoresBcryptHash(t *testing.T) {
	var created userdomain.User
	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user userdomain.User) error {
			created = user
			return nil
		},
	}
	hasher := commoncrypto.NewBcryptHasher(4)
	svc, _ := setupAuthService(repo, hasher)

	if err := svc.Register(context.Background(), service.RegisterInput{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if created.PasswordHash == "pw1" || strings.Contains(created.PasswordHash, "pw1") {
		t.Error("stored hash must not contain the plaintext password")
	}
	if !hasher.Verify("pw1", created.PasswordHash) {
		t.Error("stored hash must verify against the original password")
	}
}

func TestAuthService_Register_UserExists(t *testing.T) {
	repo := &mockUserRepo{
		findByUsernameFunc: func(ctx context.Context, username string) (userdomain.User, error) {
			return userdomain.User{ID: "existing", Username: username}, nil
		},
		createFunc: func(ctx context.Context, user userdomain.User) error {
			t.Fatal("create must not be called for an existing username")
			return nil
		},
	}
	svc, _ := setupAuthService(repo, &mockHasher{})

	err := svc.Register(context.Background(), service.RegisterInput{Username: "alice", Password: "pw1"})
	if !errors.Is(err, service.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	de, ok := commonerrors.AsDomainError(err)
	if !ok || de.HTTPStatus() != 400 || de.Message() != "User already exists" {
		t.Errorf("unexpected domain error: %v", err)
	}
}

func TestAuthService_Register_UniqueViolationRace(t *testing.T) {
	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user userdomain.User) error {
			return userrepo.ErrUsernameAlreadyExists
		},
	}
	svc, _ := setupAuthService(repo, &mockHasher{})

	err := svc.Register(context.Background(), service.RegisterInput{Username: "alice", Password: "pw1"})
	if !errors.Is(err, service.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := setupAuthService(&mockUserRepo{}, &mockHasher{})

	tests := []struct {
		name  string
		input service.RegisterInput
	}{
		{"empty username", service.RegisterInput{Password: "pw1"}},
		{"empty password", service.RegisterInput{Username: "alice"}},
		{"username too long", service.RegisterInput{Username: strings.Repeat("a", 65), Password: "pw1"}},
		{"password too long", service.RegisterInput{Username: "alice", Password: strings.Repeat("p", 73)}},
		{"multibyte password over 72 bytes", service.RegisterInput{Username: "alice", Password: strings.Repeat("é", 40)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(context.Background(), tt.input)
			if !errors.Is(err, service.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_StoreError(t *testing.T) {
	repo := &mockUserRepo{
		findByUsernameFunc: func(ctx context.Context, username string) (userdomain.User, error) {
			return userdomain.User{}, errors.New("connection refused")
		},
	}
	svc, _ := setupAuthService(repo, &mockHasher{})

	err := svc.Register(context.Background(), service.RegisterInput{Username: "alice", Password: "pw1"})
	de, ok := commonerrors.AsDomainError(err)
	if !ok || de.HTTPStatus() != 500 {
		t.Fatalf("expected 500 domain error, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &mockUserRepo{
		findByUsernameFunc: func(ctx context.Context, username string) (userdomain.User, error) {
			return userdomain.User{ID: "user-123", Username: username, PasswordHash: "hashed:pw1"}, nil
		},
	}
	svc, _ := setupAuthService(repo, &mockHasher{})

	result, err := svc.Login(context.Background(), service.LoginInput{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Token != "token-for-user-123" {
		t.Errorf("unexpected token %q", result.Token)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, _ := setupAuthService(&mockUserRepo{}, &mockHasher{})

	_, err := svc.Login(context.Background(), service.LoginInput{Username: "ghost", Password: "pw1"})
	if !errors.Is(err, service.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &mockUserRepo{
		findByUsernameFunc: func(ctx context.Context, username string) (userdomain.User, error) {
			return userdomain.User{ID: "user-123", Username: username, PasswordHash: "hashed:pw1"}, nil
		},
	}
	svc, issuer := setupAuthService(repo, &mockHasher{})
	issuer.issueFunc = func(user userdomain.User) (string, error) {
		t.Fatal("no token may be issued for a wrong password")
		return "", nil
	}

	_, err := svc.Login(context.Background(), service.LoginInput{Username: "alice", Password: "wrong"})
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_IssueError(t *testing.T) {
	repo := &mockUserRepo{
		findByUsernameFunc: func(ctx context.Context, username string) (userdomain.User, error) {
			return userdomain.User{ID: "user-123", Username: username, PasswordHash: "hashed:pw1"}, nil
		},
	}
	svc, issuer := setupAuthService(repo, &mockHasher{})
	issuer.issueFunc = func(user userdomain.User) (string, error) {
		return "", errors.New("signing failed")
	}

	_, err := svc.Login(context.Background(), service.LoginInput{Username: "alice", Password: "pw1"})
	de, ok := commonerrors.AsDomainError(err)
	if !ok || de.HTTPStatus() != 500 {
		t.Fatalf("expected 500 domain error, got %v", err)
	}
}

func TestAuthService_Register_MultibytePasswordWithinLimit(t *testing.T) {
	hasher := commoncrypto.NewBcryptHasher(4)
	var created userdomain.User
	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user userdomain.User) error {
			created = user
			return nil
		},
	}
	svc, _ := setupAuthService(repo, hasher)

	password := strings.Repeat("é", 36)
	if err := svc.Register(context.Background(), service.RegisterInput{Username: "bob", Password: password}); err != nil {
		t.Fatalf("expected 72-byte password to be accepted, got %v", err)
	}
	if !hasher.Verify(password, created.PasswordHash) {
		t.Error("stored hash must verify against the multibyte password")
	}
}
