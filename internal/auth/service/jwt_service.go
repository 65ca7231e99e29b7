// Package service provides the token codec and secret hashing implementations
// used by the authentication use cases.
package service

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/theclub/api/internal/auth/domain"
	"github.com/theclub/api/internal/config"
	"github.com/theclub/api/internal/errors"
)

const minKeyBytes = 32

// jwtService signs and verifies HS256 tokens with a single process-wide key.
type jwtService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewJWTService creates a TokenService from the configured base64-encoded
// secret and token TTL. It fails fast on a key that cannot be decoded or is
// too short to be safe for HMAC-SHA256.
func NewJWTService(cfg *config.Config) (TokenService, error) {
	key, err := base64.StdEncoding.DecodeString(cfg.JWTSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode jwt secret")
	}
	if len(key) < minKeyBytes {
		return nil, errors.New("jwt secret must be at least 32 bytes after base64 decoding")
	}
	return &jwtService{
		key: key,
		ttl: cfg.JWTExpiration,
		now: time.Now,
	}, nil
}

func (s *jwtService) Issue(subject string, extraClaims map[string]any) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{}
	for k, v := range extraClaims {
		claims[k] = v
	}
	// Reserved claims are set last so extra claims cannot override them.
	claims["sub"] = subject
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

func (s *jwtService) VerifyAndDecode(tokenString string) (string, map[string]any, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		jwt.MapClaims{},
		func(t *jwt.Token) (any, error) {
			return s.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", nil, authDomain.ErrTokenExpired
		}
		return "", nil, authDomain.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", nil, authDomain.ErrTokenMalformed
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", nil, authDomain.ErrTokenMalformed
	}

	extra := make(map[string]any, len(claims))
	for k, v := range claims {
		switch k {
		case "sub", "iat", "exp":
			continue
		}
		extra[k] = v
	}
	return subject, extra, nil
}

func (s *jwtService) IsValidFor(tokenString string, expectedSubject string) bool {
	subject, _, err := s.VerifyAndDecode(tokenString)
	return err == nil && subject == expectedSubject
}
