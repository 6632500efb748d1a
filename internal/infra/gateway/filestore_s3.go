package gateway

import (
	"context"
	"path"
	"strings"

	"barangay-reservation/internal/pkg/clock"
	"barangay-reservation/internal/pkg/errs"
	"barangay-reservation/internal/usecase/commands"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type S3Putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3FileStore writes uploads under "<category>/<yyyy>/<mm>/<uuid><ext>" and
// returns that key as the stored reference.
type S3FileStore struct {
	client S3Putter
	bucket string
	clock  clock.Clock
}

var _ commands.FileStore = (*S3FileStore)(nil)

func NewS3FileStore(client S3Putter, bucket string, clk clock.Clock) *S3FileStore {
	return &S3FileStore{client: client, bucket: bucket, clock: clk}
}

func (s *S3FileStore) Store(ctx context.Context, file commands.FileUpload, category string) (string, error) {
	key := s.objectKey(file.Filename, category)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   file.Body,
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", errs.Wrapf(err, "upload %s to bucket %s", key, s.bucket)
	}
	return key, nil
}

func (s *S3FileStore) objectKey(filename, category string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join(category, s.clock.Now().UTC().Format("2006/01"), uuid.NewString()+ext)
}
