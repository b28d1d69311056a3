package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/AlibekovAA/notes-api/internal/note/domain"
)

// MemoryRepository keeps notes in process memory. It backs tests and local
// runs without Postgres.
type MemoryRepository struct {
	mu    sync.RWMutex
	notes map[domain.ID]domain.Note
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{notes: make(map[domain.ID]domain.Note)}
}

func (r *MemoryRepository) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return domain.Note{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	note.UpdatedAt = note.CreatedAt
	stored := clone(note)
	r.notes[note.ID] = stored
	return clone(stored), nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id domain.ID) (domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return domain.Note{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.notes[id]
	if !ok {
		return domain.Note{}, ErrNoteNotFound
	}
	return clone(note), nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string, policy domain.ListPolicy) ([]domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]domain.Note, 0)
	for _, n := range r.notes {
		if n.OwnerID != ownerID {
			continue
		}
		if policy == domain.ExcludeDeleted && n.IsDeleted() {
			continue
		}
		notes = append(notes, clone(n))
	}

	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].ID > notes[j].ID
		}
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
	return notes, nil
}

func (r *MemoryRepository) Save(ctx context.Context, note domain.Note) (domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return domain.Note{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.notes[note.ID]; ok {
		note.OwnerID = existing.OwnerID
		note.CreatedAt = existing.CreatedAt
	}
	stored := clone(note)
	r.notes[note.ID] = stored
	return clone(stored), nil
}

func clone(n domain.Note) domain.Note {
	tags := make([]string, len(n.Tags))
	copy(tags, n.Tags)
	n.Tags = tags
	if n.DeletedAt != nil {
		t := *n.DeletedAt
		n.DeletedAt = &t
	}
	return n
}
