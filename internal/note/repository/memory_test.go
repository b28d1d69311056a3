package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlibekovAA/notes-api/internal/note/domain"
)

var base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func seed(t *testing.T, r *MemoryRepository, id, owner string, offset time.Duration) domain.Note {
	t.Helper()
	n, err := r.Create(context.Background(), domain.Note{
		ID:        domain.ID(id),
		OwnerID:   owner,
		Content:   "note " + id,
		Tags:      []string{"t"},
		Color:     "#ffffff",
		CreatedAt: base.Add(offset),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return n
}

func TestMemoryRepository_ListOrderAndScope(t *testing.T) {
	r := NewMemoryRepository()
	seed(t, r, "a", "u1", 0)
	seed(t, r, "b", "u1", time.Minute)
	seed(t, r, "c", "u2", 2*time.Minute)
	seed(t, r, "d", "u1", 2*time.Minute)

	notes, err := r.ListByOwner(context.Background(), "u1", domain.IncludeDeleted)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var ids []domain.ID
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	want := []domain.ID{"d", "b", "a"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}

func TestMemoryRepository_ListPolicy(t *testing.T) {
	r := NewMemoryRepository()
	n := seed(t, r, "a", "u1", 0)
	seed(t, r, "b", "u1", time.Minute)

	if _, err := r.Save(context.Background(), n.SoftDelete(base.Add(time.Hour))); err != nil {
		t.Fatalf("save: %v", err)
	}

	all, _ := r.ListByOwner(context.Background(), "u1", domain.IncludeDeleted)
	active, _ := r.ListByOwner(context.Background(), "u1", domain.ExcludeDeleted)

	if len(all) != 2 {
		t.Errorf("include policy: expected 2 notes, got %d", len(all))
	}
	if len(active) != 1 || active[0].ID != "b" {
		t.Errorf("exclude policy: expected only b, got %+v", active)
	}
}

func TestMemoryRepository_SaveKeepsOwner(t *testing.T) {
	r := NewMemoryRepository()
	n := seed(t, r, "a", "u1", 0)

	n.OwnerID = "u2"
	n.Content = "changed"
	saved, err := r.Save(context.Background(), n)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.OwnerID != "u1" {
		t.Errorf("owner must not change, got %q", saved.OwnerID)
	}
	if saved.Content != "changed" {
		t.Errorf("content must be saved, got %q", saved.Content)
	}
}

func TestMemoryRepository_FindByIDNotFound(t *testing.T) {
	r := NewMemoryRepository()
	if _, err := r.FindByID(context.Background(), "missing"); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	r := NewMemoryRepository()
	n := seed(t, r, "a", "u1", 0)

	n.Tags[0] = "mutated"
	stored, _ := r.FindByID(context.Background(), "a")
	if stored.Tags[0] != "t" {
		t.Error("repository state must not alias caller slices")
	}
}
