package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

type stubResolver struct {
	principal *domain.Principal
	err       error
	lastToken string
}

func (r *stubResolver) Resolve(_ context.Context, token string) (*domain.Principal, error) {
	r.lastToken = token
	if r.err != nil {
		return nil, r.err
	}
	return r.principal, nil
}

func runGate(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, *domain.Principal, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reachedNext := false
	var seen *domain.Principal
	handler := mw(func(c echo.Context) error {
		reachedNext = true
		seen = Principal(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, seen, reachedNext
}

func TestAuthenticate_ValidToken(t *testing.T) {
	resolver := &stubResolver{principal: &domain.Principal{
		UserID: "u1", Email: "a@x.com", Roles: []domain.Role{domain.RoleUser},
	}}

	rec, principal, reached := runGate(t, Authenticate(resolver), "Bearer good-token")

	if !reached {
		t.Fatalf("next not called, status %d", rec.Code)
	}
	if resolver.lastToken != "good-token" {
		t.Fatalf("resolver saw token %q", resolver.lastToken)
	}
	if principal == nil || principal.UserID != "u1" {
		t.Fatalf("principal not attached: %+v", principal)
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	rec, _, reached := runGate(t, Authenticate(&stubResolver{}), "")
	if reached {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	rec, _, reached := runGate(t, Authenticate(&stubResolver{}), "Token abc")
	if reached {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_DistinguishableFailures(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"expired", domain.ErrExpiredToken, http.StatusUnauthorized},
		{"malformed", domain.ErrMalformedToken, http.StatusUnauthorized},
		{"unknown subject", domain.ErrUnknownSubject, http.StatusUnauthorized},
		{"store down", errors.New("connection refused"), http.StatusInternalServerError},
	}

	bodies := map[string]bool{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _, reached := runGate(t, Authenticate(&stubResolver{err: tc.err}), "Bearer tok")
			if reached {
				t.Fatalf("next should not run")
			}
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
			if tc.wantStatus == http.StatusUnauthorized {
				if bodies[rec.Body.String()] {
					t.Fatalf("401 body %q reused: failure kinds must stay distinguishable", rec.Body.String())
				}
				bodies[rec.Body.String()] = true
			}
		})
	}
}

func TestOptionalAuth_NoHeaderProceedsWithoutPrincipal(t *testing.T) {
	rec, principal, reached := runGate(t, OptionalAuth(&stubResolver{}), "")
	if !reached || rec.Code != http.StatusOK {
		t.Fatalf("request was blocked: %d", rec.Code)
	}
	if principal != nil {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestOptionalAuth_SwallowsResolutionFailures(t *testing.T) {
	for _, err := range []error{domain.ErrExpiredToken, domain.ErrMalformedToken, domain.ErrUnknownSubject, errors.New("boom")} {
		rec, principal, reached := runGate(t, OptionalAuth(&stubResolver{err: err}), "Bearer bad")
		if !reached || rec.Code != http.StatusOK {
			t.Fatalf("err %v: request was blocked (%d)", err, rec.Code)
		}
		if principal != nil {
			t.Fatalf("err %v: principal attached on failed resolution", err)
		}
	}
}

func TestOptionalAuth_AttachesPrincipalWhenValid(t *testing.T) {
	resolver := &stubResolver{principal: &domain.Principal{UserID: "u1", Roles: []domain.Role{domain.RoleAdmin}}}
	_, principal, reached := runGate(t, OptionalAuth(resolver), "Bearer good")
	if !reached {
		t.Fatalf("next not called")
	}
	if principal == nil || !principal.IsAdmin() {
		t.Fatalf("principal not attached: %+v", principal)
	}
}
