package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbastos/tarefas-api/internal/model"
)

func TestUsuarioRepo_DuplicateEmail(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	repo := NewUsuarioRepo(pool)

	_, err := repo.Create(ctx, model.Usuario{Email: "ana@exemplo.com", SenhaHash: "h1"})
	require.NoError(t, err)

	// Second insert trips the unique index, no pre-read involved.
	_, err = repo.Create(ctx, model.Usuario{Email: "ana@exemplo.com", SenhaHash: "h2"})
	assert.ErrorIs(t, err, ErrorConflict)
}

func TestUsuarioRepo_GetPorEmail(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	repo := NewUsuarioRepo(pool)

	created, err := repo.Create(ctx, model.Usuario{Email: "ana@exemplo.com", SenhaHash: "hash"})
	require.NoError(t, err)

	got, err := repo.GetPorEmail(ctx, "ana@exemplo.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "hash", got.SenhaHash)

	// stored case-sensitively
	_, err = repo.GetPorEmail(ctx, "ANA@exemplo.com")
	assert.ErrorIs(t, err, ErrorNotFound)
}

func TestUsuarioRepo_DeleteCascades(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	usuarios := NewUsuarioRepo(pool)
	tarefas := NewTarefaRepo(pool)

	ana, err := usuarios.Create(ctx, model.Usuario{Email: "ana@exemplo.com", SenhaHash: "hash"})
	require.NoError(t, err)

	tarefa, err := tarefas.Create(ctx, model.Tarefa{Titulo: "Minha", Prioridade: model.PrioridadeVerde, DonoID: ana.ID})
	require.NoError(t, err)

	require.NoError(t, usuarios.Delete(ctx, ana.ID))

	var count int
	err = pool.QueryRow(ctx, "SELECT COUNT(*) FROM tarefas WHERE id = $1", tarefa.ID).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count, "owner deletion should cascade to tarefas")
}
