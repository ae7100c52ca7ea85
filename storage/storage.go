package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ImageResolver turns a stored deal image reference into a URL a client can load
type ImageResolver interface {
	// ResolveURL returns a fetchable URL for ref. Absolute http(s) references
	// are returned unchanged.
	ResolveURL(ctx context.Context, ref string) (string, error)
}

// StorageType represents the image storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for image storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage: directory served by the API
	LocalBaseURL string // For local storage: URL prefix the directory is served under
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
	PresignTTL   time.Duration
}

// NewImageResolver creates an image resolver based on configuration
func NewImageResolver(cfg StorageConfig) (ImageResolver, error) {
	switch cfg.Type {
	case StorageTypeLocal, "":
		return NewLocalImageResolver(cfg.LocalPath, cfg.LocalBaseURL)
	case StorageTypeS3:
		return NewS3ImageResolver(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// isAbsoluteURL reports whether ref already points at an http(s) location
func isAbsoluteURL(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// cleanKey normalizes a storage reference into an object key
func cleanKey(ref string) (string, error) {
	key := strings.TrimLeft(strings.TrimSpace(ref), "/")
	if key == "" {
		return "", fmt.Errorf("empty image reference")
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", fmt.Errorf("invalid image reference: %s", ref)
		}
	}
	return key, nil
}
