// Package auth verifies bearer credentials issued by the external identity
// provider (a Supabase/GoTrue project) and returns the caller's identity.
package auth

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrUnauthenticated is returned when the credential is missing, malformed,
	// expired or rejected by the provider
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrMissingToken narrows ErrUnauthenticated to an absent or malformed header
	ErrMissingToken = errors.New("no authorization token provided")

	// ErrInvalidToken narrows ErrUnauthenticated to a token the provider refused
	ErrInvalidToken = errors.New("invalid or expired token")
)

// authError ties a specific cause to ErrUnauthenticated
type authError struct {
	cause error
}

func (e *authError) Error() string { return e.cause.Error() }

func (e *authError) Is(target error) bool {
	return target == ErrUnauthenticated || errors.Is(e.cause, target)
}

func (e *authError) Unwrap() error { return e.cause }

func unauthenticated(cause error) error {
	return &authError{cause: cause}
}

// Identity is the provider's view of the caller
type Identity struct {
	ID    string // provider user id
	Email string
	Name  string // profile display name, may be empty
}

// Verifier validates a bearer token with the identity provider
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

const bearerPrefix = "Bearer "

// BearerToken extracts the token from an Authorization header value
func BearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", unauthenticated(ErrMissingToken)
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", unauthenticated(ErrMissingToken)
	}
	return token, nil
}

// VerifyHeader extracts the bearer token from header and verifies it
func VerifyHeader(ctx context.Context, v Verifier, header string) (*Identity, error) {
	token, err := BearerToken(header)
	if err != nil {
		return nil, err
	}
	return v.VerifyToken(ctx, token)
}
