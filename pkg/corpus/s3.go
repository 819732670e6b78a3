package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client is the part of the S3 API an S3Source needs.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config locates a corpus object in S3 or an S3-compatible store.
type S3Config struct {
	Bucket         string `env:"CORPUS_S3_BUCKET"`
	Key            string `env:"CORPUS_S3_KEY"`
	Region         string `env:"CORPUS_S3_REGION"`
	AccessKeyID    string `env:"CORPUS_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"CORPUS_S3_SECRET_KEY"`
	Endpoint       string `env:"CORPUS_S3_ENDPOINT"`         // optional, for MinIO and friends
	ForcePathStyle bool   `env:"CORPUS_S3_FORCE_PATH_STYLE"` // required by most S3-compatible stores
}

// Enabled reports whether the config points at an object.
func (c S3Config) Enabled() bool {
	return c.Bucket != "" && c.Key != ""
}

// S3Option configures NewS3Source.
type S3Option func(*s3Options)

type s3Options struct {
	client        S3Client
	configOptions []func(*config.LoadOptions) error
}

// WithS3Client uses a pre-configured client instead of building one from the
// default AWS configuration.
func WithS3Client(c S3Client) S3Option {
	return func(o *s3Options) { o.client = c }
}

// WithS3ConfigOption adds an option applied when loading the AWS config.
func WithS3ConfigOption(opt func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) { o.configOptions = append(o.configOptions, opt) }
}

// S3Source reads the corpus from a single S3 object.
type S3Source struct {
	client S3Client
	bucket string
	key    string
}

// NewS3Source validates cfg and prepares a client.
func NewS3Source(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Source, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%w: bucket and key are required", ErrInvalidS3Config)
	}

	o := &s3Options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		if cfg.Region == "" {
			return nil, fmt.Errorf("%w: region is required", ErrInvalidS3Config)
		}

		loadOpts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			loadOpts = append(loadOpts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		loadOpts = append(loadOpts, o.configOptions...)

		awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, errors.Join(ErrInvalidS3Config, err)
		}

		client = s3.NewFromConfig(awsCfg, func(so *s3.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return &S3Source{client: client, bucket: cfg.Bucket, key: cfg.Key}, nil
}

func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, "", errors.Join(ErrReadSource, fmt.Errorf("s3://%s/%s: %w", s.bucket, s.key, err))
	}
	return out.Body, path.Base(s.key), nil
}
