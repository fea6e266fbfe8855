package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mbastos/tarefas-api/internal/repo"
	"github.com/mbastos/tarefas-api/internal/service"
	"github.com/mbastos/tarefas-api/pkg/respond"
)

type UsuarioHandler struct {
	service *service.UsuarioService
	logger  *zap.Logger
}

func NewUsuarioHandler(srv *service.UsuarioService, logger *zap.Logger) *UsuarioHandler {
	return &UsuarioHandler{
		service: srv,
		logger:  logger,
	}
}

type registroRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

func (h *UsuarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req registroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "json inválido")
		return
	}

	usuario, err := h.service.Registrar(r.Context(), req.Email, req.Senha)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, usuario)
}

// Login follows the OAuth2 password flow: form-encoded username and
// password, token back as {access_token, token_type}.
func (h *UsuarioHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "formulário inválido")
		return
	}

	token, err := h.service.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (h *UsuarioHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrorConflict):
		respond.Error(w, r, http.StatusBadRequest, "email já registrado")
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusBadRequest, "email inválido ou senha com menos de 8 caracteres")
	case errors.Is(err, service.ErrCredenciaisInvalidas):
		respond.Unauthorized(w, r, "email ou senha incorretos")
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "erro interno")
	}
}
