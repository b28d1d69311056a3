package service_test

import (
	"context"

	userdomain "github.com/AlibekovAA/notes-api/internal/user/domain"
	userrepo "github.com/AlibekovAA/notes-api/internal/user/repository"
)

type mockUserRepo struct {
	createFunc         func(ctx context.Context, user userdomain.User) error
	findByUsernameFunc func(ctx context.Context, username string) (userdomain.User, error)
	findByIDFunc       func(ctx context.Context, id userdomain.ID) (userdomain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user userdomain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (userdomain.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return userdomain.User{}, userrepo.ErrUserNotFound
}

func (m *mockUserRepo) FindByID(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return userdomain.User{}, userrepo.ErrUserNotFound
}

type mockHasher struct {
	hashFunc   func(password string) (string, error)
	verifyFunc func(password, hash string) bool
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) bool {
	if m.verifyFunc != nil {
		return m.verifyFunc(password, hash)
	}
	return hash == "hashed:"+password
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "user-123", nil
}

type mockIssuer struct {
	issueFunc func(user userdomain.User) (string, error)
}

func (m *mockIssuer) Issue(user userdomain.User) (string, error) {
	if m.issueFunc != nil {
		return m.issueFunc(user)
	}
	return "token-for-" + string(user.ID), nil
}
