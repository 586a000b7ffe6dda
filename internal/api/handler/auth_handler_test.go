package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

type stubAuthService struct {
	signUpFn         func(ctx context.Context, email, password string) (string, *domain.User, error)
	signInFn         func(ctx context.Context, email, password string) (string, *domain.User, error)
	resolveFn        func(ctx context.Context, token string) (*domain.Principal, error)
	refreshFn        func(p *domain.Principal) (string, error)
	changePasswordFn func(ctx context.Context, userID, current, next string) error
}

func (s *stubAuthService) SignUp(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.signUpFn(ctx, email, password)
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubAuthService) Resolve(ctx context.Context, token string) (*domain.Principal, error) {
	return s.resolveFn(ctx, token)
}

func (s *stubAuthService) Refresh(p *domain.Principal) (string, error) {
	return s.refreshFn(p)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	return s.changePasswordFn(ctx, userID, current, next)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "maria@example.com" || password != "hunter22" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "tok123", &domain.User{ID: "u1", Email: email, Roles: []domain.Role{domain.RoleUser}}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/register", `{"email":"maria@example.com","password":"hunter22"}`)
	if err := h.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok123" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "maria@example.com" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_SignUp_ValidationFailure(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("service should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub)

	cases := map[string]string{
		"bad email":      `{"email":"not-an-email","password":"hunter22"}`,
		"short password": `{"email":"maria@example.com","password":"abc"}`,
		"empty body":     `{}`,
	}
	for name, body := range cases {
		c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register", body)
		if code := httpCode(t, h.SignUp(c)); code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %d", name, code)
		}
	}
}

func TestAuthHandler_SignUp_MalformedBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register", "not-json")
	if code := httpCode(t, h.SignUp(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestAuthHandler_SignUp_DuplicateEmailPassesThrough(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/register", `{"email":"maria@example.com","password":"hunter22"}`)
	if err := h.SignUp(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_SignIn_Success(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "tok456", &domain.User{ID: "u1", Email: email}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"email":"maria@example.com","password":"hunter22"}`)
	if err := h.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "tok456") {
		t.Fatalf("expected token in body: %s", rec.Body.String())
	}
}

func TestAuthHandler_SignIn_InvalidCredentialsPassThrough(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/api/auth/login", `{"email":"maria@example.com","password":"wrong"}`)
	if err := h.SignIn(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newJSONContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set("principal", &domain.Principal{
		UserID: "u1",
		Email:  "maria@example.com",
		Roles:  []domain.Role{domain.RoleUser, domain.RoleAdmin},
	})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp principalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.UserID != "u1" || len(resp.Roles) != 2 {
		t.Fatalf("unexpected principal payload: %+v", resp)
	}
}

func TestAuthHandler_Me_WithoutPrincipal(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodGet, "/api/auth/me", "")
	if code := httpCode(t, h.Me(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(p *domain.Principal) (string, error) {
			if p.UserID != "u1" {
				t.Fatalf("unexpected principal: %+v", p)
			}
			return "tok789", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/refresh", "")
	c.Set("principal", &domain.Principal{UserID: "u1"})

	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "tok789") {
		t.Fatalf("expected token in body: %s", rec.Body.String())
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	var gotUserID string
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, userID, current, next string) error {
			gotUserID = userID
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPut, "/api/auth/password", `{"current_password":"hunter22","new_password":"hunter23"}`)
	c.Set("principal", &domain.Principal{UserID: "u1"})

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotUserID != "u1" {
		t.Fatalf("expected change for u1, got %q", gotUserID)
	}
}
