package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mbastos/tarefas-api/internal/auth"
	"github.com/mbastos/tarefas-api/internal/model"
	"github.com/mbastos/tarefas-api/internal/repo"
	"github.com/mbastos/tarefas-api/internal/service"
	"github.com/mbastos/tarefas-api/pkg/respond"
)

type TarefaHandler struct {
	service *service.TarefaService
	logger  *zap.Logger
}

func NewTarefaHandler(srv *service.TarefaService, logger *zap.Logger) *TarefaHandler {
	return &TarefaHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *TarefaHandler) Create(w http.ResponseWriter, r *http.Request) {
	usuario := auth.UsuarioFromContext(r.Context())
	if usuario == nil {
		respond.Unauthorized(w, r, "não foi possível validar as credenciais")
		return
	}

	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "corpo da requisição vazio")
		return
	}

	var req model.Tarefa
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("json inválido: %v", err))
		return
	}

	tarefa, err := h.service.Create(r.Context(), usuario.ID, req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/tarefas/%d", tarefa.ID))
	respond.JSON(w, r, http.StatusCreated, tarefa)
}

func (h *TarefaHandler) Get(w http.ResponseWriter, r *http.Request) {
	usuario := auth.UsuarioFromContext(r.Context())
	if usuario == nil {
		respond.Unauthorized(w, r, "não foi possível validar as credenciais")
		return
	}

	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	tarefa, err := h.service.Get(r.Context(), usuario.ID, id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tarefa)
}

func (h *TarefaHandler) List(w http.ResponseWriter, r *http.Request) {
	usuario := auth.UsuarioFromContext(r.Context())
	if usuario == nil {
		respond.Unauthorized(w, r, "não foi possível validar as credenciais")
		return
	}

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	tarefas, err := h.service.List(r.Context(), usuario.ID, skip, limit)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tarefas)
}

func (h *TarefaHandler) Update(w http.ResponseWriter, r *http.Request) {
	usuario := auth.UsuarioFromContext(r.Context())
	if usuario == nil {
		respond.Unauthorized(w, r, "não foi possível validar as credenciais")
		return
	}

	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	var req model.Tarefa
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "json inválido")
		return
	}

	tarefa, err := h.service.Update(r.Context(), usuario.ID, id, req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tarefa)
}

func (h *TarefaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	usuario := auth.UsuarioFromContext(r.Context())
	if usuario == nil {
		respond.Unauthorized(w, r, "não foi possível validar as credenciais")
		return
	}

	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	tarefa, err := h.service.Delete(r.Context(), usuario.ID, id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tarefa)
}

func (h *TarefaHandler) Resumo(w http.ResponseWriter, r *http.Request) {
	usuario := auth.UsuarioFromContext(r.Context())
	if usuario == nil {
		respond.Unauthorized(w, r, "não foi possível validar as credenciais")
		return
	}

	resumo, err := h.service.Resumo(r.Context(), usuario.ID)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, resumo)
}

func (h *TarefaHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		// A task held by another user answers exactly like a missing one.
		respond.Error(w, r, http.StatusNotFound, "tarefa não encontrada")
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusBadRequest, "dados inválidos")
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "erro interno")
	}
}
