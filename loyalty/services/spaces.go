package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SpacesService resolves script cover images stored in a DigitalOcean Spaces
// bucket. Covers are uploaded by staff tooling; this service only reads.
type SpacesService struct {
	client    *s3.Client
	bucket    string
	region    string
	CoverRoot string
	cache     *coverCache
}

func NewSpacesService(spacesKey, spacesSecret, region, bucket, coverRoot string) (*SpacesService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load Spaces config: %w", err)
	}

	cache, err := newCoverCache()
	if err != nil {
		return nil, err
	}

	return &SpacesService{
		client:    s3.NewFromConfig(cfg),
		bucket:    bucket,
		region:    region,
		CoverRoot: strings.TrimPrefix(coverRoot, "/"),
		cache:     cache,
	}, nil
}

// CoverURL returns the public URL for a script's cover, or an empty string
// when no object exists (the projector substitutes its placeholder then).
// Existence checks are cached.
func (s *SpacesService) CoverURL(ctx context.Context, scriptTitle string) string {
	key := s.coverKey(scriptTitle)

	if exists, ok := s.cache.get(key); ok {
		if !exists {
			return ""
		}
		return s.publicURL(key)
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	exists := err == nil
	s.cache.put(key, exists)

	if !exists {
		return ""
	}
	return s.publicURL(key)
}

func (s *SpacesService) coverKey(scriptTitle string) string {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(scriptTitle), " ", "_"))
	if s.CoverRoot == "" {
		return fmt.Sprintf("covers/%s.jpg", name)
	}
	return fmt.Sprintf("%s/covers/%s.jpg", s.CoverRoot, name)
}

func (s *SpacesService) publicURL(key string) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, key)
}

func (s *SpacesService) GetBucket() string {
	return s.bucket
}

func (s *SpacesService) GetRegion() string {
	return s.region
}
