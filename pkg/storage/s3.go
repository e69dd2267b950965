package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	appconfig "diary-backend/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store uploads diary images to an S3-compatible bucket (AWS or MinIO)
// and hands back a public URL for each object.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Store(cfg *appconfig.Config) (*S3Store, error) {
	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := cfg.S3PublicURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("%s/%s", strings.TrimRight(cfg.S3Endpoint, "/"), cfg.S3Bucket)
	}

	return &S3Store{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload stores the object under key and returns its public URL.
func (s *S3Store) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
