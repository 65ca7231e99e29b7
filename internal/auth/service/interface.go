package service

// TokenService encodes and verifies the signed, self-contained credentials
// carried by clients between requests. Tokens are issued only by the login and
// refresh flows; every other caller verifies.
type TokenService interface {
	// Issue builds and signs a token for the subject with issued-at set to the
	// current instant and expiry set to the configured TTL. Extra claims are
	// embedded as-is; the reserved sub/iat/exp claims cannot be overridden.
	Issue(subject string, extraClaims map[string]any) (string, error)

	// VerifyAndDecode parses the token, checks the signature against the
	// process-wide secret, and checks freshness. Returns ErrTokenExpired for a
	// correctly signed token past its expiry and ErrTokenMalformed for
	// anything that cannot be parsed or verified. On success it returns the
	// subject and the extra claims.
	VerifyAndDecode(token string) (subject string, claims map[string]any, err error)

	// IsValidFor reports whether the token verifies and carries the expected
	// subject. Any failure yields false; it never returns an error.
	IsValidFor(token string, expectedSubject string) bool
}

// SecretService is the injectable secret-hashing strategy used for account
// passwords at registration and primary login.
type SecretService interface {
	// HashSecret hashes a plain text secret.
	HashSecret(plainSecret string) (hashedSecret string, err error)

	// CompareSecret performs a constant-time comparison between a plain secret and its hash.
	CompareSecret(plainSecret string, hashedSecret string) bool
}
