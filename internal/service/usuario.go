package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/mbastos/tarefas-api/internal/auth"
	"github.com/mbastos/tarefas-api/internal/model"
	"github.com/mbastos/tarefas-api/internal/repo"
)

var (
	// ErrCredenciaisInvalidas covers both an unknown email and a wrong
	// password, so login never reveals which one it was.
	ErrCredenciaisInvalidas = errors.New("invalid credentials")
)

const minSenha = 8

type UsuarioService struct {
	repo   repo.UsuarioRepository
	tokens *auth.TokenManager
}

func NewUsuarioService(repo repo.UsuarioRepository, tokens *auth.TokenManager) *UsuarioService {
	return &UsuarioService{repo: repo, tokens: tokens}
}

// Registrar creates an account. Duplicate emails surface as
// repo.ErrorConflict straight from the unique index.
func (s *UsuarioService) Registrar(ctx context.Context, email, senha string) (model.Usuario, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return model.Usuario{}, ErrValidation
	}
	if len(senha) < minSenha {
		return model.Usuario{}, ErrValidation
	}

	hash, err := auth.HashSenha(senha)
	if err != nil {
		return model.Usuario{}, err
	}
	return s.repo.Create(ctx, model.Usuario{Email: email, SenhaHash: hash})
}

// Login checks the credentials and issues an access token whose subject
// is the account email.
func (s *UsuarioService) Login(ctx context.Context, email, senha string) (string, error) {
	u, err := s.repo.GetPorEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrorNotFound) {
			return "", ErrCredenciaisInvalidas
		}
		return "", err
	}
	if !auth.VerificarSenha(senha, u.SenhaHash) {
		return "", ErrCredenciaisInvalidas
	}
	return s.tokens.Issue(u.Email, time.Now())
}
