package ports

// TokenClaims is the verified identity embedded in a bearer token.
type TokenClaims struct {
	UID   string
	Email string
	Role  string
}

// TokenIssuer produces signed, time-limited bearer tokens.
type TokenIssuer interface {
	Issue(uid, email, role string) (string, error)
}

// TokenVerifier checks a bearer token's signature and expiry.
// Implementations return domain.ErrInvalidToken for malformed, tampered,
// or expired tokens.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}
