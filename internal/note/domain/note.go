package domain

import (
	"errors"
	"time"
)

type ID string

// ErrNotOwner is returned by EnsureOwner; callers translate it to their own
// error taxonomy.
var ErrNotOwner = errors.New("note is owned by another user")

type Note struct {
	ID        ID
	OwnerID   string
	Content   string
	Tags      []string
	Color     string
	Archived  bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n Note) IsDeleted() bool {
	return n.DeletedAt != nil
}

// EnsureOwner is the single ownership check for every disclosing or mutating
// operation on a note.
func (n Note) EnsureOwner(userID string) error {
	if userID == "" || n.OwnerID != userID {
		return ErrNotOwner
	}
	return nil
}

// Replace applies full-replacement update semantics: every editable field is
// overwritten, nothing is merged.
func (n Note) Replace(content string, tags []string, color string, archived bool, now time.Time) Note {
	n.Content = content
	n.Tags = tags
	n.Color = color
	n.Archived = archived
	n.UpdatedAt = now
	return n
}

func (n Note) SoftDelete(now time.Time) Note {
	n.DeletedAt = &now
	n.UpdatedAt = now
	return n
}

// ListPolicy decides whether soft-deleted notes show up in List.
type ListPolicy int

const (
	IncludeDeleted ListPolicy = iota
	ExcludeDeleted
)

func (p ListPolicy) String() string {
	if p == ExcludeDeleted {
		return "exclude_deleted"
	}
	return "include_deleted"
}
