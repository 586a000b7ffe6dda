package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/pkg/token"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
	// findErr forces FindByEmail/FindByID to fail, simulating an
	// unreachable store.
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	clone := cloneUser(user)
	clone.ID = "user-" + strconv.Itoa(r.nextID)
	r.nextID++
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func newTestAuthService(t *testing.T, repo *stubUserRepo) *AuthService {
	t.Helper()
	codec, err := token.NewCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return NewAuthService(repo, codec)
}

func TestAuthService_SignUp_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	tok, user, err := svc.SignUp(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected token")
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(user.Roles) != 1 || user.Roles[0] != domain.RoleUser {
		t.Fatalf("unexpected roles: %v", user.Roles)
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	if _, _, err := svc.SignUp(context.Background(), "a@x.com", "secret1"); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}
	if _, _, err := svc.SignUp(context.Background(), "a@x.com", "other66"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_SignUpThenSignIn_ResolvesSameUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	t1, created, err := svc.SignUp(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	t2, user, err := svc.SignIn(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("sign-in resolved a different user: %s vs %s", user.ID, created.ID)
	}

	for _, tok := range []string{t1, t2} {
		p, err := svc.Resolve(context.Background(), tok)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if p.Email != "a@x.com" || p.UserID != created.ID {
			t.Fatalf("unexpected principal: %+v", p)
		}
	}
}

func TestAuthService_SignIn_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	_, _, _ = svc.SignUp(context.Background(), "a@x.com", "secret1")

	_, _, wrongPass := svc.SignIn(context.Background(), "a@x.com", "wrong")
	_, _, noSuchUser := svc.SignIn(context.Background(), "ghost@x.com", "secret1")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(noSuchUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noSuchUser)
	}
}

func TestAuthService_SignIn_StoreFailureIsNotInvalidCredentials(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("connection refused")
	svc := newTestAuthService(t, repo)

	_, _, err := svc.SignIn(context.Background(), "a@x.com", "secret1")
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("store failure must not be reported as invalid credentials")
	}
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestAuthService_Resolve_RolesReadFromStore(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	tok, created, err := svc.SignUp(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	// Grant admin after the token was issued: the next resolve must see it.
	repo.users[created.ID].Roles = append(repo.users[created.ID].Roles, domain.RoleAdmin)

	p, err := svc.Resolve(context.Background(), tok)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !p.IsAdmin() {
		t.Fatalf("expected principal to carry current role set")
	}
}

func TestAuthService_Resolve_UnknownSubject(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	tok, created, err := svc.SignUp(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	// Delete the user; the still-valid token must not resolve.
	delete(repo.users, created.ID)

	if _, err := svc.Resolve(context.Background(), tok); !errors.Is(err, domain.ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}

func TestAuthService_Resolve_MalformedToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	if _, err := svc.Resolve(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}

func TestAuthService_Refresh_IssuesNewTokenSameSubject(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	_, created, err := svc.SignUp(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	tok, err := svc.Refresh(&domain.Principal{UserID: created.ID, Email: created.Email})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	p, err := svc.Resolve(context.Background(), tok)
	if err != nil {
		t.Fatalf("Resolve refreshed token: %v", err)
	}
	if p.UserID != created.ID {
		t.Fatalf("refreshed token resolved to %s, want %s", p.UserID, created.ID)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	_, created, err := svc.SignUp(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), created.ID, "wrong", "newpass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong current password, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), created.ID, "secret1", "newpass1"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, _, err := svc.SignIn(context.Background(), "a@x.com", "secret1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password still authenticates")
	}
	if _, _, err := svc.SignIn(context.Background(), "a@x.com", "newpass1"); err != nil {
		t.Fatalf("new password does not authenticate: %v", err)
	}
}
