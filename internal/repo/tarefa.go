package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mbastos/tarefas-api/internal/model"
)

// Resumo aggregates a single user's tasks.
type Resumo struct {
	Total         int            `json:"total"`
	Concluidas    int            `json:"concluidas"`
	Pendentes     int            `json:"pendentes"`
	Vencidas      int            `json:"vencidas"`
	PorPrioridade map[string]int `json:"por_prioridade"`
}

type TarefaRepo struct {
	pool *pgxpool.Pool
}

func NewTarefaRepo(pool *pgxpool.Pool) *TarefaRepo {
	return &TarefaRepo{pool: pool}
}

func (r *TarefaRepo) Create(ctx context.Context, t model.Tarefa) (model.Tarefa, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tarefas (titulo, descricao, concluida, data_vencimento, prioridade, dono_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, titulo, descricao, concluida, data_vencimento, prioridade, dono_id
	`, t.Titulo, t.Descricao, t.Concluida, t.DataVencimento, t.Prioridade, t.DonoID)

	created, err := scanTarefa(row)
	return created, mapError(err)
}

func (r *TarefaRepo) Get(ctx context.Context, id, donoID int64) (model.Tarefa, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, titulo, descricao, concluida, data_vencimento, prioridade, dono_id
		FROM tarefas
		WHERE id = $1 AND dono_id = $2
	`, id, donoID)

	t, err := scanTarefa(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrorNotFound
	}
	return t, err
}

// List returns only the owner's rows, oldest first (ascending id).
func (r *TarefaRepo) List(ctx context.Context, donoID int64, skip, limit int) ([]model.Tarefa, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, titulo, descricao, concluida, data_vencimento, prioridade, dono_id
		FROM tarefas
		WHERE dono_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`, donoID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tarefas := make([]model.Tarefa, 0, limit)
	for rows.Next() {
		t, err := scanTarefa(rows)
		if err != nil {
			return nil, err
		}
		tarefas = append(tarefas, t)
	}
	return tarefas, rows.Err()
}

// Update replaces every mutable field. The owner filter means a row held
// by someone else is reported as missing, never touched.
func (r *TarefaRepo) Update(ctx context.Context, t model.Tarefa) (model.Tarefa, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tarefas
		SET titulo = $3, descricao = $4, concluida = $5, data_vencimento = $6, prioridade = $7
		WHERE id = $1 AND dono_id = $2
		RETURNING id, titulo, descricao, concluida, data_vencimento, prioridade, dono_id
	`, t.ID, t.DonoID, t.Titulo, t.Descricao, t.Concluida, t.DataVencimento, t.Prioridade)

	updated, err := scanTarefa(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return updated, ErrorNotFound
	}
	return updated, err
}

// Delete returns the removed row's last state.
func (r *TarefaRepo) Delete(ctx context.Context, id, donoID int64) (model.Tarefa, error) {
	row := r.pool.QueryRow(ctx, `
		DELETE FROM tarefas
		WHERE id = $1 AND dono_id = $2
		RETURNING id, titulo, descricao, concluida, data_vencimento, prioridade, dono_id
	`, id, donoID)

	t, err := scanTarefa(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TarefaRepo) Resumo(ctx context.Context, donoID int64) (Resumo, error) {
	res := Resumo{PorPrioridade: make(map[string]int)}

	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE concluida),
			COUNT(*) FILTER (WHERE NOT concluida),
			COUNT(*) FILTER (WHERE NOT concluida AND data_vencimento < CURRENT_DATE)
		FROM tarefas
		WHERE dono_id = $1
	`, donoID).Scan(&res.Total, &res.Concluidas, &res.Pendentes, &res.Vencidas)
	if err != nil {
		return res, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT prioridade, COUNT(*)
		FROM tarefas
		WHERE dono_id = $1
		GROUP BY prioridade
	`, donoID)
	if err != nil {
		return res, err
	}
	defer rows.Close()

	for rows.Next() {
		var prioridade string
		var count int
		if err := rows.Scan(&prioridade, &count); err != nil {
			return res, err
		}
		res.PorPrioridade[prioridade] = count
	}
	return res, rows.Err()
}

func scanTarefa(row pgx.Row) (model.Tarefa, error) {
	var t model.Tarefa
	err := row.Scan(&t.ID, &t.Titulo, &t.Descricao, &t.Concluida, &t.DataVencimento, &t.Prioridade, &t.DonoID)
	return t, err
}
