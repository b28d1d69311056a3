package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/notes-api/internal/common/db"
	"github.com/AlibekovAA/notes-api/internal/user/domain"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

type Repository interface {
	Create(ctx context.Context, user domain.User) error
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByID(ctx context.Context, id domain.ID) (domain.User, error)
}

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Create(ctx context.Context, user domain.User) error {
	start := time.Now()
	_, err := r.pool.Exec(
		ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		string(user.ID),
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
	)
	if db.IsUniqueViolation(err) {
		_ = db.HandleExecError(nil, "insert user", start)
		return ErrUsernameAlreadyExists
	}
	return db.HandleExecError(err, "insert user", start)
}

func (r *PgRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT id::text, username, password_hash, created_at FROM users WHERE username = $1`,
		username,
	)

	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err := db.HandleQueryError(err, ErrUserNotFound, "find user by username", start); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *PgRepository) FindByID(ctx context.Context, id domain.ID) (domain.User, error) {
	start := time.Now()
	row := r.pool.QueryRow(
		ctx,
		`SELECT id::text, username, password_hash, created_at FROM users WHERE id = $1`,
		string(id),
	)

	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if db.IsInvalidTextRepresentation(err) {
		_ = db.HandleQueryError(nil, ErrUserNotFound, "find user by id", start)
		return domain.User{}, ErrUserNotFound
	}
	if err := db.HandleQueryError(err, ErrUserNotFound, "find user by id", start); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
