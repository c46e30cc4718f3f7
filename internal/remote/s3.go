// Package remote pushes the published posts to an S3-compatible bucket.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/AliSoftware/blogtool/internal/model"
	"github.com/AliSoftware/blogtool/internal/repository"
)

var remoteLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	remoteLogger = l
}

const hashMetadataKey = "content-hash"

// API is the slice of the S3 client the syncer uses, kept narrow so tests can
// fake it.
type API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Sync struct {
	client API
	bucket string
	prefix string
}

func NewS3Sync(ctx context.Context, accessKeyID, accessKeySecret, endpoint, region, bucket, prefix string) (*S3Sync, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, accessKeySecret, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing S3 client: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &S3Sync{client: client, bucket: bucket, prefix: prefix}, nil
}

func NewS3SyncWithClient(client API, bucket, prefix string) *S3Sync {
	return &S3Sync{client: client, bucket: bucket, prefix: prefix}
}

// Push uploads every document in the collection that is missing or stale on
// the remote side, comparing sha256 content hashes stored as object metadata.
// It returns the number of objects uploaded.
func (r *S3Sync) Push(ctx context.Context, repo repository.Repository) (int, error) {
	docs, err := repo.List()
	if err != nil {
		return 0, fmt.Errorf("listing documents: %w", err)
	}

	uploaded := 0
	for _, doc := range docs {
		changed, err := r.needsUpload(ctx, doc)
		if err != nil {
			return uploaded, err
		}
		if !changed {
			remoteLogger.Debug().Str("doc", doc.Name).Msg("Remote object is current, skipping")
			continue
		}

		if err := r.upload(ctx, doc); err != nil {
			return uploaded, err
		}
		uploaded++
	}

	return uploaded, nil
}

func (r *S3Sync) key(name string) string {
	return path.Join(r.prefix, name)
}

func (r *S3Sync) needsUpload(ctx context.Context, doc model.Document) (bool, error) {
	head, err := r.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key(doc.Name)),
	})
	if err != nil {
		// Missing objects surface as an error here; upload unconditionally.
		return true, nil
	}

	return head.Metadata[hashMetadataKey] != doc.MDContentHash, nil
}

func (r *S3Sync) upload(ctx context.Context, doc model.Document) error {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.key(doc.Name)),
		Body:        bytes.NewReader(doc.Markdown),
		ContentType: aws.String("text/markdown; charset=utf-8"),
		Metadata:    map[string]string{hashMetadataKey: doc.MDContentHash},
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", doc.Name, err)
	}

	remoteLogger.Info().Str("doc", doc.Name).Str("bucket", r.bucket).Msg("Uploaded")
	return nil
}
