package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"homecollection/internal/config"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

type s3ClientOptions struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	ForcePathStyle  bool
	// DefaultChain 允许在未配置静态密钥时回退到 AWS 默认凭证链（环境变量、共享配置、实例角色）
	DefaultChain bool
}

// s3Putter 通过 S3 API 写入对象，大文件由 manager.Uploader 自动分片上传。
type s3Putter struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
}

func (p *s3Putter) exists(ctx context.Context, key string) (bool, error) {
	_, err := p.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: aws.String(p.bucket), Key: aws.String(key)})
	if err == nil {
		return true, nil
	}
	if isS3NotFound(err) {
		return false, nil
	}
	return false, err
}

func (p *s3Putter) put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := p.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}

func isS3NotFound(err error) bool {
	if err == nil {
		return false
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := strings.ToLower(apiErr.ErrorCode())
		if code == "notfound" || code == "nosuchkey" || code == "404" {
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "status code: 404")
}

func NewS3Storage(cfg config.Config) (Storage, error) {
	bucket := strings.TrimSpace(cfg.StorageS3Bucket)
	if bucket == "" {
		return nil, errors.New("storage: missing S3 bucket")
	}

	client, err := newS3Client(s3ClientOptions{
		Region:          cfg.StorageS3Region,
		Endpoint:        cfg.StorageS3Endpoint,
		AccessKeyID:     cfg.StorageS3AccessKeyID,
		SecretAccessKey: cfg.StorageS3SecretAccessKey,
		SessionToken:    cfg.StorageS3SessionToken,
		ForcePathStyle:  cfg.StorageS3ForcePathStyle,
		DefaultChain:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: create S3 client: %w", err)
	}

	return newS3BackedStorage(client, bucket, cfg.StorageS3Prefix), nil
}

func newS3BackedStorage(client *s3.Client, bucket, prefix string) *remoteStorage {
	return &remoteStorage{
		putter: &s3Putter{
			client:   client,
			uploader: manager.NewUploader(client),
			bucket:   bucket,
		},
		prefix: trimPrefix(prefix),
	}
}

func newS3Client(opts s3ClientOptions) (*s3.Client, error) {
	region := strings.TrimSpace(opts.Region)
	if region == "" {
		return nil, errors.New("storage: missing S3 region")
	}
	accessKey := strings.TrimSpace(opts.AccessKeyID)
	secretKey := strings.TrimSpace(opts.SecretAccessKey)

	var awsCfg aws.Config
	switch {
	case accessKey != "" && secretKey != "":
		awsCfg = aws.Config{
			Region: region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, strings.TrimSpace(opts.SessionToken)),
			),
		}
	case opts.DefaultChain:
		loaded, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
		if err != nil {
			return nil, fmt.Errorf("storage: load default AWS config: %w", err)
		}
		awsCfg = loaded
	default:
		return nil, errors.New("storage: missing S3 credentials")
	}

	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = opts.ForcePathStyle
	})

	return client, nil
}
