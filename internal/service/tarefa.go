package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/mbastos/tarefas-api/internal/model"
	"github.com/mbastos/tarefas-api/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

const (
	maxTitulo    = 100
	maxDescricao = 500

	defaultLimit = 100
)

type TarefaService struct {
	repo repo.TarefaRepository
}

func NewTarefaService(repo repo.TarefaRepository) *TarefaService {
	return &TarefaService{repo: repo}
}

// Create stores a new task for donoID. Whatever dono_id the client sent
// is discarded.
func (s *TarefaService) Create(ctx context.Context, donoID int64, t model.Tarefa) (model.Tarefa, error) {
	t.ID = 0
	t.DonoID = donoID
	if t.Prioridade == "" {
		t.Prioridade = model.PrioridadeVerde
	}
	if err := s.validate(t); err != nil {
		return t, err
	}
	return s.repo.Create(ctx, t)
}

func (s *TarefaService) Get(ctx context.Context, donoID, id int64) (model.Tarefa, error) {
	return s.repo.Get(ctx, id, donoID)
}

func (s *TarefaService) List(ctx context.Context, donoID int64, skip, limit int) ([]model.Tarefa, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}
	return s.repo.List(ctx, donoID, skip, limit)
}

// Update is a full replace: fields absent from the request end up with
// their zero/default values, not the stored ones.
func (s *TarefaService) Update(ctx context.Context, donoID, id int64, t model.Tarefa) (model.Tarefa, error) {
	t.ID = id
	t.DonoID = donoID
	if t.Prioridade == "" {
		t.Prioridade = model.PrioridadeVerde
	}
	if err := s.validate(t); err != nil {
		return t, err
	}
	return s.repo.Update(ctx, t)
}

// Delete returns the removed task's last state.
func (s *TarefaService) Delete(ctx context.Context, donoID, id int64) (model.Tarefa, error) {
	return s.repo.Delete(ctx, id, donoID)
}

func (s *TarefaService) Resumo(ctx context.Context, donoID int64) (repo.Resumo, error) {
	return s.repo.Resumo(ctx, donoID)
}

func (s *TarefaService) validate(t model.Tarefa) error {
	if strings.TrimSpace(t.Titulo) == "" {
		return ErrValidation
	}
	if utf8.RuneCountInString(t.Titulo) > maxTitulo {
		return ErrValidation
	}
	if t.Descricao != nil && utf8.RuneCountInString(*t.Descricao) > maxDescricao {
		return ErrValidation
	}
	if !t.Prioridade.Valid() {
		return ErrValidation
	}
	return nil
}
