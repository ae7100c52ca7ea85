package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RemoteVerifier asks the provider's user endpoint who a token belongs to
type RemoteVerifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRemoteVerifier creates a verifier for the project at baseURL.
// A nil client gets a default one with the given timeout.
func NewRemoteVerifier(baseURL, apiKey string, client *http.Client, timeout time.Duration) *RemoteVerifier {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &RemoteVerifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

type providerUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name     string `json:"name"`
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
}

// VerifyToken calls GET {baseURL}/auth/v1/user with the token.
// 4xx answers mean the token was rejected; anything else unexpected is a provider failure.
func (v *RemoteVerifier) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build identity request: %w", err)
	}
	req.Header.Set("Authorization", bearerPrefix+token)
	req.Header.Set("apikey", v.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, unauthenticated(ErrInvalidToken)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var u providerUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}
	if u.Email == "" {
		return nil, unauthenticated(ErrInvalidToken)
	}

	name := u.UserMetadata.Name
	if name == "" {
		name = u.UserMetadata.FullName
	}

	return &Identity{ID: u.ID, Email: u.Email, Name: name}, nil
}
