package infra

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/careerlink/company-service/config"
	"github.com/careerlink/company-service/utils"
)

// DefaultPresignExpiry bounds presigned read URLs when the caller does not
// pick a TTL.
const DefaultPresignExpiry = 2 * time.Hour

type MinioClient struct {
	Admin    *madmin.AdminClient
	Client   *minio.Client
	Region   string
	Endpoint string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	rootUser := cfg.Minio.RootUser
	if rootUser == "" {
		panic("MinIO root user is not configured")
	}

	rootPassword := cfg.Minio.RootPassword
	if rootPassword == "" {
		panic("MinIO root password is not configured")
	}

	madminClient, err := madmin.New(endpoint, rootUser, rootPassword, cfg.Minio.UseSSL)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO admin client: %v", err))
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
		Secure: cfg.Minio.UseSSL,
		Region: cfg.Minio.Region,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	return &MinioClient{
		Admin:    madminClient,
		Client:   minioClient,
		Region:   cfg.Minio.Region,
		Endpoint: endpoint,
	}
}

// bucketPolicyJSON builds the policy document applied at bucket creation.
// Public buckets grant anonymous list/get, private buckets restrict the same
// actions to the service principal.
func bucketPolicyJSON(bucketName string, public bool) string {
	principal := `{"AWS": "arn:aws:iam::company:root"}`
	if public {
		principal = `"*"`
	}

	return fmt.Sprintf(`{
	"Version": "2012-10-17",
	"Statement": [
		{
			"Effect": "Allow",
			"Principal": %s,
			"Action": ["s3:GetBucketLocation", "s3:ListBucket"],
			"Resource": "arn:aws:s3:::%s"
		},
		{
			"Effect": "Allow",
			"Principal": %s,
			"Action": "s3:GetObject",
			"Resource": "arn:aws:s3:::%s/*"
		}
	]
}`, principal, bucketName, principal, bucketName)
}

// bucketAPI is the slice of the storage client ensureBucket needs.
type bucketAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	SetBucketPolicy(ctx context.Context, bucketName, policy string) error
}

// EnsureBucket creates the bucket with its visibility policy if it does not
// exist yet. Losing a creation race to a concurrent caller counts as success.
func (m *MinioClient) EnsureBucket(ctx context.Context, bucketName string, public bool) error {
	return ensureBucket(ctx, m.Client, m.Region, bucketName, public)
}

func ensureBucket(ctx context.Context, api bucketAPI, region, bucketName string, public bool) error {
	if bucketName == "" {
		return utils.BadRequest("bucketName cannot be empty")
	}

	exists, err := api.BucketExists(ctx, bucketName)
	if err != nil {
		return utils.Storage("failed to check bucket existence", err)
	}
	if exists {
		return nil
	}

	err = api.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: region})
	if err != nil {
		code := minio.ToErrorResponse(err).Code
		if code != "BucketAlreadyOwnedByYou" && code != "BucketAlreadyExists" {
			return utils.Storage("failed to create bucket", err)
		}
		// Another caller created it first; the policy below is idempotent.
	}

	if err := api.SetBucketPolicy(ctx, bucketName, bucketPolicyJSON(bucketName, public)); err != nil {
		return utils.Storage("failed to set bucket policy", err)
	}

	return nil
}

// PutObject uploads an object, creating its bucket first. An existing object
// of the same name is overwritten.
func (m *MinioClient) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string, public bool) error {
	if objectName == "" {
		return utils.BadRequest("objectName cannot be empty")
	}

	if err := m.EnsureBucket(ctx, bucketName, public); err != nil {
		return err
	}

	_, err := m.Client.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return utils.Storage("failed to upload object", err)
	}

	return nil
}

// RemoveObject deletes an object. Deleting an absent object is a no-op.
func (m *MinioClient) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	err := m.Client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		code := minio.ToErrorResponse(err).Code
		if code == "NoSuchKey" || code == "NoSuchBucket" {
			return nil
		}
		return utils.Storage("failed to remove object", err)
	}
	return nil
}

// ObjectExists reports whether the object is present. Absence is not an
// error; only backend failures are.
func (m *MinioClient) ObjectExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.Client.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		code := minio.ToErrorResponse(err).Code
		if code == "NoSuchKey" || code == "NoSuchBucket" {
			return false, nil
		}
		return false, utils.Storage("failed to stat object", err)
	}
	return true, nil
}

// PresignedReadURL issues a time-bounded GET capability for one object. The
// object must exist at issuance.
func (m *MinioClient) PresignedReadURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = DefaultPresignExpiry
	}

	exists, err := m.ObjectExists(ctx, bucketName, objectName)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", utils.NotFound("object not found")
	}

	presigned, err := m.Client.PresignedGetObject(ctx, bucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", utils.Storage("failed to presign object URL", err)
	}

	return presigned.String(), nil
}

// Health checks that the storage backend answers admin requests.
func (m *MinioClient) Health(ctx context.Context) error {
	if _, err := m.Admin.ServerInfo(ctx); err != nil {
		return utils.Storage("storage backend unreachable", err)
	}
	return nil
}
