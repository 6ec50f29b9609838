package s3

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	portsrepo "github.com/quizforum/quizforum-backend/internal/core/ports/repositories"
)

// ImageStore uploads quiz images to an S3 bucket with public-read objects and
// returns the public URL.
type ImageStore struct {
	client *awss3.Client
	bucket string
	region string
}

var _ portsrepo.ImageStore = (*ImageStore)(nil)

// NewImageStore builds an S3-backed image store using the default credential
// chain (env vars, shared config, instance role).
func NewImageStore(ctx context.Context, bucket, region string) (*ImageStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &ImageStore{
		client: awss3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// UploadImage stores the image under image/<millis><ext> and returns the
// public object URL.
func (s *ImageStore) UploadImage(ctx context.Context, fileName string, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("image/%d%s", time.Now().UnixMilli(), path.Ext(fileName))

	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to s3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
