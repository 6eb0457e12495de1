package auth

// Verifier checks submitted passwords against the configured site secret.
// The secret is fixed at construction and only ever read, so a Verifier is
// safe for concurrent use.
type Verifier struct {
	secret string
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret}
}

// Verify returns nil when submitted matches the configured secret,
// ErrInvalidPassword when it does not, and ErrSecretNotConfigured when the
// verifier was built without a secret.
//
// The comparison is plain string equality and is not constant-time.
func (v *Verifier) Verify(submitted string) error {
	if v == nil || v.secret == "" {
		return ErrSecretNotConfigured
	}

	if submitted != v.secret {
		return ErrInvalidPassword
	}

	return nil
}
