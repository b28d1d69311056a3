package service

import (
	"context"
	"errors"

	"github.com/AlibekovAA/notes-api/internal/common/clock"
	"github.com/AlibekovAA/notes-api/internal/common/constants"
	commoncrypto "github.com/AlibekovAA/notes-api/internal/common/crypto"
	commonerrors "github.com/AlibekovAA/notes-api/internal/common/errors"
	"github.com/AlibekovAA/notes-api/internal/common/logger"
	"github.com/AlibekovAA/notes-api/internal/common/validation"
	"github.com/AlibekovAA/notes-api/internal/note/domain"
	noterepo "github.com/AlibekovAA/notes-api/internal/note/repository"
)

type NoteService struct {
	repo        noterepo.Repository
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	listPolicy  domain.ListPolicy
	log         *logger.Logger
}

func NewNoteService(
	repo noterepo.Repository,
	idGenerator commoncrypto.IDGenerator,
	clk clock.Clock,
	listPolicy domain.ListPolicy,
	log *logger.Logger,
) *NoteService {
	return &NoteService{
		repo:        repo,
		idGenerator: idGenerator,
		clock:       clk,
		listPolicy:  listPolicy,
		log:         log,
	}
}

// NoteInput is the editable part of a note. A nil Tags slice and an empty
// Color fall back to the defaults.
type NoteInput struct {
	Content  string   `validate:"required,max=20000"`
	Tags     []string `validate:"max=50,dive,max=64"`
	Color    string   `validate:"max=32"`
	Archived bool
}

func (in NoteInput) normalized() NoteInput {
	if in.Tags == nil {
		in.Tags = []string{}
	}
	if in.Color == "" {
		in.Color = constants.DefaultNoteColor
	}
	return in
}

func (s *NoteService) Create(ctx context.Context, ownerID string, input NoteInput) (domain.Note, error) {
	note, err := s.create(ctx, ownerID, input)
	recordOperation("create", err)
	return note, err
}

func (s *NoteService) create(ctx context.Context, ownerID string, input NoteInput) (domain.Note, error) {
	if err := s.validate(ctx, ownerID, "create", input); err != nil {
		return domain.Note{}, err
	}
	input = input.normalized()

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": ownerID,
			"action":  "note_create_id_generation_failed",
		}).Errorf("note create failed: id generation error: %v", err)
		return domain.Note{}, commonerrors.ErrInternalError.WithCause(err)
	}

	now := s.clock.Now()
	note, err := s.repo.Create(ctx, domain.Note{
		ID:        domain.ID(id),
		OwnerID:   ownerID,
		Content:   input.Content,
		Tags:      input.Tags,
		Color:     input.Color,
		Archived:  input.Archived,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": ownerID,
			"action":  "note_create_failed",
		}).Errorf("note create failed: %v", err)
		return domain.Note{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id": ownerID,
		"note_id": string(note.ID),
		"action":  "note_created",
	}).Info("note created")

	return note, nil
}

// List returns the caller's notes, newest first. Whether soft-deleted notes
// are included is decided by the service's ListPolicy.
func (s *NoteService) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	notes, err := s.repo.ListByOwner(ctx, ownerID, s.listPolicy)
	recordOperation("list", err)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": ownerID,
			"policy":  s.listPolicy.String(),
			"action":  "note_list_failed",
		}).Errorf("note list failed: %v", err)
		return nil, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return notes, nil
}

func (s *NoteService) Get(ctx context.Context, userID string, id domain.ID) (domain.Note, error) {
	note, err := s.loadOwned(ctx, userID, id, "get")
	recordOperation("get", err)
	return note, err
}

// Update replaces every editable field of the note. Soft-deleted notes may
// still be updated by their owner.
func (s *NoteService) Update(ctx context.Context, userID string, id domain.ID, input NoteInput) (domain.Note, error) {
	note, err := s.update(ctx, userID, id, input)
	recordOperation("update", err)
	return note, err
}

func (s *NoteService) update(ctx context.Context, userID string, id domain.ID, input NoteInput) (domain.Note, error) {
	note, err := s.loadOwned(ctx, userID, id, "update")
	if err != nil {
		return domain.Note{}, err
	}

	if err := s.validate(ctx, userID, "update", input); err != nil {
		return domain.Note{}, err
	}
	input = input.normalized()

	updated := note.Replace(input.Content, input.Tags, input.Color, input.Archived, s.clock.Now())
	saved, err := s.repo.Save(ctx, updated)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"note_id": string(id),
			"action":  "note_update_failed",
		}).Errorf("note update failed: %v", err)
		return domain.Note{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id": userID,
		"note_id": string(id),
		"action":  "note_updated",
	}).Info("note updated")

	return saved, nil
}

// Delete soft-deletes the note. Deleting an already deleted note refreshes
// its deletion time.
func (s *NoteService) Delete(ctx context.Context, userID string, id domain.ID) error {
	err := s.delete(ctx, userID, id)
	recordOperation("delete", err)
	return err
}

func (s *NoteService) delete(ctx context.Context, userID string, id domain.ID) error {
	note, err := s.loadOwned(ctx, userID, id, "delete")
	if err != nil {
		return err
	}

	if _, err := s.repo.Save(ctx, note.SoftDelete(s.clock.Now())); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"note_id": string(id),
			"action":  "note_delete_failed",
		}).Errorf("note delete failed: %v", err)
		return commonerrors.ErrDatabaseError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id": userID,
		"note_id": string(id),
		"action":  "note_deleted",
	}).Info("note deleted")

	return nil
}

// loadOwned resolves existence before ownership: a missing note is reported
// as not found even to a caller who would not own it.
func (s *NoteService) loadOwned(ctx context.Context, userID string, id domain.ID, operation string) (domain.Note, error) {
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, noterepo.ErrNoteNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"user_id": userID,
				"note_id": string(id),
				"action":  "note_" + operation + "_not_found",
			}).Warn("note not found")
			return domain.Note{}, ErrNoteNotFound
		}
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"note_id": string(id),
			"action":  "note_" + operation + "_fetch_failed",
		}).Errorf("note fetch failed: %v", err)
		return domain.Note{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	if err := note.EnsureOwner(userID); err != nil {
		incrementOwnershipDenied(operation)
		s.log.WithFields(ctx, logger.Fields{
			"user_id": userID,
			"note_id": string(id),
			"action":  "note_" + operation + "_forbidden",
		}).Warn("note access denied: not owner")
		return domain.Note{}, ErrNoteForbidden.WithCause(err)
	}

	return note, nil
}

func (s *NoteService) validate(ctx context.Context, userID, operation string, input NoteInput) error {
	msg, err := validation.Struct(input)
	if err != nil {
		return commonerrors.ErrInternalError.WithCause(err)
	}
	if msg == "" {
		return nil
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id": userID,
		"action":  "note_" + operation + "_validation_failed",
	}).Warnf("note validation failed: %s", msg)
	return newValidationError(msg)
}
