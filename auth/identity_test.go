package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "ok", header: "Bearer abc.def", want: "abc.def"},
		{name: "trailing space trimmed", header: "Bearer abc ", want: "abc"},
		{name: "missing", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "lowercase scheme", header: "bearer abc", wantErr: true},
		{name: "empty token", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnauthenticated)
				assert.ErrorIs(t, err, ErrMissingToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type stubVerifier struct {
	gotToken string
	identity *Identity
	err      error
}

func (s *stubVerifier) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	s.gotToken = token
	return s.identity, s.err
}

func TestVerifyHeader(t *testing.T) {
	v := &stubVerifier{identity: &Identity{Email: "a@example.com"}}

	id, err := VerifyHeader(context.Background(), v, "Bearer tok")
	require.NoError(t, err)
	assert.Equal(t, "tok", v.gotToken)
	assert.Equal(t, "a@example.com", id.Email)

	v.gotToken = ""
	_, err = VerifyHeader(context.Background(), v, "tok")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, v.gotToken, "verifier must not be called for a malformed header")
}
