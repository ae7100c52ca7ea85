package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3ImageResolver resolves references to presigned GET URLs for objects in a bucket
type S3ImageResolver struct {
	presign func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (string, error)
	bucket  string
	ttl     time.Duration
}

// NewS3ImageResolver creates a new S3 resolver
func NewS3ImageResolver(cfg StorageConfig) (*S3ImageResolver, error) {
	ctx := context.Background()

	var awsCfg aws.Config
	var err error

	if cfg.AWSAccessKey != "" && cfg.AWSSecretKey != "" {
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.S3Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AWSAccessKey,
				cfg.AWSSecretKey,
				"",
			)),
		)
	} else {
		// environment, shared config or IAM role
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.S3Region),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewPresignClient(s3.NewFromConfig(awsCfg))

	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &S3ImageResolver{
		presign: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (string, error) {
			req, err := client.PresignGetObject(ctx, params, optFns...)
			if err != nil {
				return "", err
			}
			return req.URL, nil
		},
		bucket: cfg.S3Bucket,
		ttl:    ttl,
	}, nil
}

// ResolveURL presigns a GET for the referenced object
func (s *S3ImageResolver) ResolveURL(ctx context.Context, ref string) (string, error) {
	if isAbsoluteURL(ref) {
		return ref, nil
	}

	key, err := cleanKey(ref)
	if err != nil {
		return "", err
	}

	url, err := s.presign(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign S3 object: %w", err)
	}

	return url, nil
}
