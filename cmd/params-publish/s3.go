package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/poly-layer/snarkVM/log"
)

// S3Config holds the configuration for S3 uploads
type S3Config struct {
	Enabled   bool
	HostBase  string
	AccessKey string
	SecretKey string
	Space     string
	Bucket    string
}

// NewDefaultS3Config returns a new S3Config with default values
func NewDefaultS3Config() *S3Config {
	return &S3Config{
		Enabled:  false,
		HostBase: "ams3.digitaloceanspaces.com",
		Space:    "parameters",
		Bucket:   "testnet3",
	}
}

// S3Uploader handles parameter uploads to S3
type S3Uploader struct {
	client *s3.Client
	config *S3Config
}

// NewS3Uploader creates a new S3Uploader with the provided configuration
func NewS3Uploader(cfg *S3Config) (*S3Uploader, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("s3 upload not enabled")
	}

	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}

	sdkConfig, err := config.LoadDefaultConfig(context.Background(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"", // Session token not used with DO Spaces
		)),
		config.WithRegion("us-east-1"), // This doesn't matter for DO Spaces but is required
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s", cfg.HostBase))
		o.UsePathStyle = true
	})

	return &S3Uploader{
		client: client,
		config: cfg,
	}, nil
}

// UploadFile uploads a file to the configured S3 bucket and returns the object key
func (u *S3Uploader) UploadFile(ctx context.Context, filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Warnw("failed to close file", "error", err)
		}
	}()

	// The filename is the object key, prefixed by the release folder.
	fileName := filepath.Base(filePath)
	objectKey := fmt.Sprintf("%s/%s", u.config.Bucket, fileName)

	uploadInput := &s3.PutObjectInput{
		Bucket: aws.String(u.config.Space),
		Key:    aws.String(objectKey),
		Body:   file,
	}

	log.Infow("uploading file to S3", "file", fileName, "space", u.config.Space, "bucket", u.config.Bucket)
	if _, err := u.client.PutObject(ctx, uploadInput); err != nil {
		return "", fmt.Errorf("failed to upload file %s: %w", filePath, err)
	}

	return objectKey, nil
}

// SetPublicACL sets the ACL of specific objects to public-read
func (u *S3Uploader) SetPublicACL(ctx context.Context, objectKeys []string) error {
	if len(objectKeys) == 0 {
		log.Infow("no objects to set public ACL")
		return nil
	}

	for _, key := range objectKeys {
		aclInput := &s3.PutObjectAclInput{
			Bucket: aws.String(u.config.Space),
			Key:    aws.String(key),
			ACL:    types.ObjectCannedACLPublicRead,
		}

		log.Infow("setting public ACL", "object", key)
		if _, err := u.client.PutObjectAcl(ctx, aclInput); err != nil {
			return fmt.Errorf("failed to set ACL for object %s: %w", key, err)
		}
	}

	return nil
}

// TestS3Connection tests the connection to the S3 service
func TestS3Connection(ctx context.Context, s3Config *S3Config) error {
	if !s3Config.Enabled {
		log.Infow("s3 upload not enabled, skipping connection test")
		return nil
	}

	log.Infow("testing S3 connection...")

	uploader, err := NewS3Uploader(s3Config)
	if err != nil {
		return fmt.Errorf("failed to create S3 uploader: %w", err)
	}

	// Try to list objects to test the connection
	listInput := &s3.ListObjectsV2Input{
		Bucket:  aws.String(s3Config.Space),
		MaxKeys: aws.Int32(1), // Only need 1 object to verify connection
	}

	if _, err := uploader.client.ListObjectsV2(ctx, listInput); err != nil {
		return fmt.Errorf("S3 connection test failed: %w", err)
	}

	log.Infow("S3 connection successful",
		"host", s3Config.HostBase,
		"space", s3Config.Space,
		"bucket", s3Config.Bucket)
	return nil
}

// UploadFiles uploads a list of specific files to S3 and makes them public
func UploadFiles(ctx context.Context, filePaths []string, s3Config *S3Config) error {
	if !s3Config.Enabled {
		log.Infow("s3 upload not enabled, skipping")
		return nil
	}

	if len(filePaths) == 0 {
		log.Infow("no files to upload")
		return nil
	}

	uploader, err := NewS3Uploader(s3Config)
	if err != nil {
		return fmt.Errorf("failed to create S3 uploader: %w", err)
	}

	uploadedKeys := []string{}
	for _, filePath := range filePaths {
		objectKey, err := uploader.UploadFile(ctx, filePath)
		if err != nil {
			return fmt.Errorf("failed to upload file %s: %w", filePath, err)
		}
		uploadedKeys = append(uploadedKeys, objectKey)
	}

	// Set ACL to public-read only for the files just uploaded
	log.Infow("setting public ACL for uploaded parameters", "count", len(uploadedKeys))
	if err := uploader.SetPublicACL(ctx, uploadedKeys); err != nil {
		return fmt.Errorf("failed to set public ACL: %w", err)
	}

	log.Infow("parameters successfully uploaded to S3", "count", len(uploadedKeys))
	return nil
}
