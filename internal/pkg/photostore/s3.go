package photostore

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/env"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/reporting"
)

const thumbnailSize = 320

// Config holds the S3 connection settings for report photos.
type Config struct {
	Enabled         bool
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	EndpointURL     string
	PublicBaseURL   string
}

// LoadConfig reads the photo storage settings from the environment.
// Photos are disabled unless S3_ENABLED is set.
func LoadConfig() *Config {
	return &Config{
		Enabled:         env.GetEnv("S3_ENABLED", "false") == "true",
		Region:          env.GetEnv("S3_REGION", "us-east-1"),
		Bucket:          env.GetEnv("S3_BUCKET", "ecoguard-photos"),
		AccessKeyID:     env.GetEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: env.GetEnv("S3_SECRET_ACCESS_KEY", ""),
		EndpointURL:     env.GetEnv("S3_ENDPOINT_URL", ""),
		PublicBaseURL:   env.GetEnv("S3_PUBLIC_BASE_URL", ""),
	}
}

// S3Store persists report photos and their thumbnails in an S3 bucket.
// It implements reporting.PhotoStore.
type S3Store struct {
	client *s3.Client
	config *Config
}

// NewS3Store creates the photo store. Returns (nil, nil) when photo
// storage is disabled by configuration.
func NewS3Store(cfg *Config) (*S3Store, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			// MinIO/B2 style endpoints need path-style URLs
			o.UsePathStyle = true
			o.UseAccelerate = false
		}
	})

	store := &S3Store{client: client, config: cfg}

	if _, err := client.HeadBucket(context.Background(), &s3.HeadBucketInput{
		Bucket: aws.String(cfg.Bucket),
	}); err != nil {
		return nil, fmt.Errorf("bucket %s not accessible: %w", cfg.Bucket, err)
	}

	log.Infof("[PhotoStore] initialized S3 photo storage for bucket: %s", cfg.Bucket)
	return store, nil
}

// Store decodes the upload, extracts EXIF GPS coordinates if present,
// renders a thumbnail and uploads both objects. The returned URLs are
// public, built from the configured base URL.
func (s *S3Store) Store(ctx context.Context, data []byte, filename string) (*reporting.StoredPhoto, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reporting.ErrInvalidPhoto, err)
	}

	stored := &reporting.StoredPhoto{}
	if lat, lng, ok := extractGPS(data); ok {
		stored.Latitude = lat
		stored.Longitude = lng
		stored.HasGPS = true
	}

	key := photoKey(filename)
	thumbKey := strings.TrimSuffix(key, path.Ext(key)) + "_thumb.jpg"

	if err := s.put(ctx, key, data, contentTypeFor(key)); err != nil {
		return nil, fmt.Errorf("upload photo: %w", err)
	}

	thumb := imaging.Fit(img, thumbnailSize, thumbnailSize, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	if err := s.put(ctx, thumbKey, buf.Bytes(), "image/jpeg"); err != nil {
		return nil, fmt.Errorf("upload thumbnail: %w", err)
	}

	stored.URL = s.publicURL(key)
	stored.ThumbnailURL = s.publicURL(thumbKey)
	return stored, nil
}

func (s *S3Store) put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}

func (s *S3Store) publicURL(key string) string {
	base := s.config.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.config.Bucket, s.config.Region)
	}
	return strings.TrimSuffix(base, "/") + "/" + key
}

// photoKey builds a collision-free object key, keeping the original
// extension when it looks like an image extension.
func photoKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
	default:
		ext = ".jpg"
	}
	return "reports/" + uuid.New().String() + ext
}

func contentTypeFor(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
