package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// TokenPrefix marks tokens minted by the mock login endpoint.
const TokenPrefix = "mock_jwt_"

var (
	ErrMissingToken = errors.New("missing authorization token")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// NewToken mints an opaque bearer token. There is no signature or claim set
// behind it; the prefix only makes mock tokens recognisable in logs.
func NewToken() string {
	return TokenPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// VerifyToken applies the mock acceptance rules: anything at least 10
// characters long that does not look expired passes.
func VerifyToken(token string) error {
	if token == "" {
		return ErrMissingToken
	}
	if len(token) < 10 || strings.Contains(token, "expired") {
		return ErrInvalidToken
	}
	return nil
}
