package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mbastos/tarefas-api/internal/model"
	"github.com/mbastos/tarefas-api/internal/repo"
	"github.com/mbastos/tarefas-api/pkg/respond"
)

const detailCredenciais = "não foi possível validar as credenciais"

type contextKey struct{}

var usuarioKey contextKey

// ContextWithUsuario stores the authenticated user in ctx.
func ContextWithUsuario(ctx context.Context, u *model.Usuario) context.Context {
	return context.WithValue(ctx, usuarioKey, u)
}

// UsuarioFromContext returns the user set by RequireAuth, or nil.
func UsuarioFromContext(ctx context.Context) *model.Usuario {
	u, _ := ctx.Value(usuarioKey).(*model.Usuario)
	return u
}

// RequireAuth resolves the bearer token to a user and stores it in the
// request context. Every failure mode answers with the same 401: a token
// whose user no longer exists must be indistinguishable from a bad token.
func RequireAuth(tokens *TokenManager, usuarios repo.UsuarioRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				respond.Unauthorized(w, r, detailCredenciais)
				return
			}

			email, err := tokens.Verify(token, time.Now())
			if err != nil {
				respond.Unauthorized(w, r, detailCredenciais)
				return
			}

			usuario, err := usuarios.GetPorEmail(r.Context(), email)
			if err != nil {
				if !errors.Is(err, repo.ErrorNotFound) {
					logger.Error("failed to resolve token subject", zap.Error(err))
				}
				respond.Unauthorized(w, r, detailCredenciais)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUsuario(r.Context(), &usuario)))
		})
	}
}
