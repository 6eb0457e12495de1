package middlewares

//go:generate mockgen -source=provider_interfaces.go -destination=../mocks/verifier.go -package=mocks

// CredentialVerifier checks a submitted site password. Implementations return
// auth.ErrInvalidPassword for a wrong password and auth.ErrSecretNotConfigured
// when no password is configured.
type CredentialVerifier interface {
	Verify(submitted string) error
}
