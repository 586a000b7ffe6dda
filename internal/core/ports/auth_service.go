package ports

import (
	"context"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/domain"
)

// AuthService implements the authentication use cases and principal
// resolution for the access control middleware.
type AuthService interface {
	// SignUp registers a new user with the base role and returns it together
	// with a fresh token. Fails with domain.ErrEmailTaken on duplicates.
	SignUp(ctx context.Context, email, password string) (string, *domain.User, error)
	// SignIn verifies credentials and returns a fresh token. Unknown email
	// and wrong password both fail with domain.ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (string, *domain.User, error)
	// Resolve turns a verified bearer token into a Principal with the role
	// set read from the store at this instant.
	Resolve(ctx context.Context, token string) (*domain.Principal, error)
	// Refresh issues a new token for an already-authenticated principal.
	Refresh(p *domain.Principal) (string, error)
	// ChangePassword re-verifies the current password before storing the new
	// hash. A mismatch fails with domain.ErrInvalidCredentials.
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
