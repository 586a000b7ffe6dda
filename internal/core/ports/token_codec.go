package ports

// TokenCodec issues and verifies signed, time-bounded identity tokens
// carrying a single claim: the subject user id.
type TokenCodec interface {
	// Issue returns a signed token for the given subject.
	Issue(subjectID string) (string, error)
	// Verify returns the subject id, or domain.ErrExpiredToken /
	// domain.ErrMalformedToken so callers can tell the two apart.
	Verify(token string) (string, error)
}
