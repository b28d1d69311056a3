package service

import (
	"context"

	"github.com/AlibekovAA/notes-api/internal/note/domain"
	noterepo "github.com/AlibekovAA/notes-api/internal/note/repository"
)

type mockNoteRepo struct {
	createFunc      func(ctx context.Context, note domain.Note) (domain.Note, error)
	findByIDFunc    func(ctx context.Context, id domain.ID) (domain.Note, error)
	listByOwnerFunc func(ctx context.Context, ownerID string, policy domain.ListPolicy) ([]domain.Note, error)
	saveFunc        func(ctx context.Context, note domain.Note) (domain.Note, error)
}

func (m *mockNoteRepo) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, note)
	}
	return note, nil
}

func (m *mockNoteRepo) FindByID(ctx context.Context, id domain.ID) (domain.Note, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return domain.Note{}, noterepo.ErrNoteNotFound
}

func (m *mockNoteRepo) ListByOwner(ctx context.Context, ownerID string, policy domain.ListPolicy) ([]domain.Note, error) {
	if m.listByOwnerFunc != nil {
		return m.listByOwnerFunc(ctx, ownerID, policy)
	}
	return []domain.Note{}, nil
}

func (m *mockNoteRepo) Save(ctx context.Context, note domain.Note) (domain.Note, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, note)
	}
	return note, nil
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "11111111-1111-4111-8111-111111111111", nil
}
