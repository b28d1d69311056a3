package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/notes-api/internal/common/db"
	"github.com/AlibekovAA/notes-api/internal/note/domain"
)

var ErrNoteNotFound = errors.New("note not found")

type Repository interface {
	Create(ctx context.Context, note domain.Note) (domain.Note, error)
	FindByID(ctx context.Context, id domain.ID) (domain.Note, error)
	ListByOwner(ctx context.Context, ownerID string, policy domain.ListPolicy) ([]domain.Note, error)
	Save(ctx context.Context, note domain.Note) (domain.Note, error)
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

const noteColumns = `id::text, owner_id::text, content, tags, color, archived, deleted_at, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (domain.Note, error) {
	var n domain.Note
	err := row.Scan(
		&n.ID,
		&n.OwnerID,
		&n.Content,
		&n.Tags,
		&n.Color,
		&n.Archived,
		&n.DeletedAt,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return n, err
}

// tagsOrEmpty keeps a nil slice from being encoded as SQL NULL.
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func (r *PgRepository) Create(ctx context.Context, note domain.Note) (domain.Note, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`INSERT INTO notes (id, owner_id, content, tags, color, archived, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		 RETURNING `+noteColumns,
		string(note.ID),
		note.OwnerID,
		note.Content,
		tagsOrEmpty(note.Tags),
		note.Color,
		note.Archived,
		note.CreatedAt,
	)

	created, err := scanNote(row)
	if err := db.HandleQueryError(err, ErrNoteNotFound, "insert note", start); err != nil {
		return domain.Note{}, err
	}
	return created, nil
}

func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.Note, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1`,
		string(id),
	)

	note, err := scanNote(row)
	if db.IsInvalidTextRepresentation(err) {
		_ = db.HandleQueryError(nil, ErrNoteNotFound, "find note by id", start)
		return domain.Note{}, ErrNoteNotFound
	}
	if err := db.HandleQueryError(err, ErrNoteNotFound, "find note by id", start); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

func (r *PgRepository) ListByOwner(ctx context.Context, ownerID string, policy domain.ListPolicy) ([]domain.Note, error) {
	start := time.Now()
	rows, err := r.pool.Query(ctx, listByOwnerQuery(policy), ownerID)
	if err != nil {
		return nil, db.HandleExecError(err, "list notes by owner", start)
	}
	defer rows.Close()

	notes := make([]domain.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, db.HandleExecError(err, "scan notes by owner", start)
		}
		notes = append(notes, n)
	}

	if err := db.HandleExecError(rows.Err(), "list notes by owner", start); err != nil {
		return nil, err
	}
	return notes, nil
}

func listByOwnerQuery(policy domain.ListPolicy) string {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE owner_id = $1`
	if policy == domain.ExcludeDeleted {
		query += ` AND deleted_at IS NULL`
	}
	return query + ` ORDER BY created_at DESC, id DESC`
}

// saveNoteQuery never lists owner_id or created_at in its update set.
const saveNoteQuery = `INSERT INTO notes (id, owner_id, content, tags, color, archived, deleted_at, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE SET
		content = EXCLUDED.content,
		tags = EXCLUDED.tags,
		color = EXCLUDED.color,
		archived = EXCLUDED.archived,
		deleted_at = EXCLUDED.deleted_at,
		updated_at = EXCLUDED.updated_at
	RETURNING ` + noteColumns

// Save upserts by id. owner_id and created_at are never rewritten on conflict,
// so a note cannot change hands through this path.
func (r *PgRepository) Save(ctx context.Context, note domain.Note) (domain.Note, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		saveNoteQuery,
		string(note.ID),
		note.OwnerID,
		note.Content,
		tagsOrEmpty(note.Tags),
		note.Color,
		note.Archived,
		note.DeletedAt,
		note.CreatedAt,
		note.UpdatedAt,
	)

	saved, err := scanNote(row)
	if err := db.HandleQueryError(err, ErrNoteNotFound, "save note", start); err != nil {
		return domain.Note{}, err
	}
	return saved, nil
}
