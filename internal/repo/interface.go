package repo

import (
	"context"

	"github.com/mbastos/tarefas-api/internal/model"
)

// UsuarioRepository is the persistence contract for accounts.
type UsuarioRepository interface {
	Create(ctx context.Context, u model.Usuario) (model.Usuario, error)
	GetPorEmail(ctx context.Context, email string) (model.Usuario, error)
	Delete(ctx context.Context, id int64) error
}

// TarefaRepository is the persistence contract for tasks. Every
// task-scoped call takes the owner's id; rows belonging to anyone else
// are invisible to it.
type TarefaRepository interface {
	Create(ctx context.Context, t model.Tarefa) (model.Tarefa, error)
	Get(ctx context.Context, id, donoID int64) (model.Tarefa, error)
	List(ctx context.Context, donoID int64, skip, limit int) ([]model.Tarefa, error)
	Update(ctx context.Context, t model.Tarefa) (model.Tarefa, error)
	Delete(ctx context.Context, id, donoID int64) (model.Tarefa, error)
	Resumo(ctx context.Context, donoID int64) (Resumo, error)
}
