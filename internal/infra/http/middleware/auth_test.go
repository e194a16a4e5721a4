package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jcarter-pt/traincrm/internal/entity"
	"github.com/jcarter-pt/traincrm/internal/infra/http/middleware"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByToken(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func TestAuthValidToken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	user := &entity.User{ID: "user-1", Name: "Jess Carter", Email: "jess@example.com"}
	mockUsers.On("FindByToken", mock.Anything, "tok-123").Return(user, nil)

	var seen *entity.User
	handler := middleware.Auth(mockUsers)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.UserFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user, seen)
}

func TestAuthMissingHeader(t *testing.T) {
	mockUsers := new(MockUserRepository)
	handler := middleware.Auth(mockUsers)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	req := httptest.NewRequest("GET", "/api/leads", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"invalid or missing API token"}`, w.Body.String())
	mockUsers.AssertNotCalled(t, "FindByToken")
}

func TestAuthUnknownToken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByToken", mock.Anything, "tok-bad").Return(nil, entity.ErrNotFound)

	handler := middleware.Auth(mockUsers)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an unknown token")
	}))

	req := httptest.NewRequest("GET", "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer tok-bad")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthNonBearerSchemeRejected(t *testing.T) {
	mockUsers := new(MockUserRepository)
	handler := middleware.Auth(mockUsers)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest("GET", "/api/leads", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockUsers.AssertNotCalled(t, "FindByToken")
}
