package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mbastos/tarefas-api/internal/model"
	"github.com/mbastos/tarefas-api/internal/repo"
)

type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) Create(ctx context.Context, u model.Usuario) (model.Usuario, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(model.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) GetPorEmail(ctx context.Context, email string) (model.Usuario, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRequireAuth(t *testing.T) {
	tm := NewTokenManager("test-secret", 30*time.Minute)

	validToken, err := tm.Issue("ana@exemplo.com", time.Now())
	require.NoError(t, err)
	expiredToken, err := tm.Issue("ana@exemplo.com", time.Now().Add(-1*time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name      string
		header    string
		setupMock func(*MockUsuarioRepository)
		wantCode  int
		wantUser  int64
	}{
		{
			name:   "valid token resolves the user",
			header: "Bearer " + validToken,
			setupMock: func(m *MockUsuarioRepository) {
				m.On("GetPorEmail", mock.Anything, "ana@exemplo.com").
					Return(model.Usuario{ID: 7, Email: "ana@exemplo.com"}, nil)
			},
			wantCode: http.StatusOK,
			wantUser: 7,
		},
		{
			name:      "missing header",
			header:    "",
			setupMock: func(m *MockUsuarioRepository) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "not a bearer header",
			header:    "Basic abc123",
			setupMock: func(m *MockUsuarioRepository) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "garbage token",
			header:    "Bearer not.a.token",
			setupMock: func(m *MockUsuarioRepository) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:      "expired token",
			header:    "Bearer " + expiredToken,
			setupMock: func(m *MockUsuarioRepository) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:   "token for deleted user answers like a bad token",
			header: "Bearer " + validToken,
			setupMock: func(m *MockUsuarioRepository) {
				m.On("GetPorEmail", mock.Anything, "ana@exemplo.com").
					Return(model.Usuario{}, repo.ErrorNotFound)
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUsuarioRepository)
			tt.setupMock(mockRepo)

			var gotUser *model.Usuario
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = UsuarioFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/tarefas/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			RequireAuth(tm, mockRepo, zap.NewNop())(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)

			if tt.wantCode == http.StatusOK {
				require.NotNil(t, gotUser)
				assert.Equal(t, tt.wantUser, gotUser.ID)
			} else {
				assert.Nil(t, gotUser)
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

				var body map[string]string
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "não foi possível validar as credenciais", body["detail"])
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
