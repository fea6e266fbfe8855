package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbastos/tarefas-api/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")
)

type UsuarioRepo struct {
	pool *pgxpool.Pool
}

func NewUsuarioRepo(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// Create inserts the account. A duplicate email trips the unique index
// and comes back as ErrorConflict; there is no read-before-write.
func (r *UsuarioRepo) Create(ctx context.Context, u model.Usuario) (model.Usuario, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO usuarios (email, senha_hash)
		VALUES ($1, $2)
		RETURNING id
	`, u.Email, u.SenhaHash).Scan(&u.ID)
	return u, mapError(err)
}

func (r *UsuarioRepo) GetPorEmail(ctx context.Context, email string) (model.Usuario, error) {
	var u model.Usuario
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, senha_hash
		FROM usuarios
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.SenhaHash)

	if errors.Is(err, pgx.ErrNoRows) {
		return u, ErrorNotFound
	}
	return u, err
}

// Delete removes the account; tarefas go with it via ON DELETE CASCADE.
func (r *UsuarioRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM usuarios WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return ErrorConflict
		}
	}
	return err
}
