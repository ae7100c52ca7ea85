package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of a provider access token we read
type Claims struct {
	jwt.RegisteredClaims
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

// JWTVerifier validates HS256 access tokens locally with the project's JWT secret
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier creates a verifier. An empty audience disables the aud check.
func NewJWTVerifier(secret []byte, audience string) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return &JWTVerifier{secret: secret, parser: jwt.NewParser(opts...)}
}

// VerifyToken checks the signature, expiry and audience of a provider-issued JWT.
func (v *JWTVerifier) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	claims := &Claims{}

	parsed, err := v.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, unauthenticated(ErrInvalidToken)
	}
	if claims.Email == "" || claims.Subject == "" {
		return nil, unauthenticated(ErrInvalidToken)
	}

	return &Identity{ID: claims.Subject, Email: claims.Email, Name: claims.UserMetadata.Name}, nil
}
