package storage

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// LocalImageResolver resolves references to files served from a local directory
type LocalImageResolver struct {
	basePath string
	baseURL  string
}

// NewLocalImageResolver creates a local resolver, creating basePath if needed
func NewLocalImageResolver(basePath, baseURL string) (*LocalImageResolver, error) {
	if basePath != "" {
		if err := os.MkdirAll(basePath, 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	return &LocalImageResolver{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// BasePath returns the directory images are served from
func (s *LocalImageResolver) BasePath() string {
	return s.basePath
}

// BaseURL returns the URL prefix images are served under
func (s *LocalImageResolver) BaseURL() string {
	return s.baseURL
}

// ResolveURL joins the reference onto the configured base URL
func (s *LocalImageResolver) ResolveURL(ctx context.Context, ref string) (string, error) {
	if isAbsoluteURL(ref) {
		return ref, nil
	}

	key, err := cleanKey(ref)
	if err != nil {
		return "", err
	}

	return s.baseURL + "/" + key, nil
}
