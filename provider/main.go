package provider

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/careerlink/company-service/config"
	"github.com/careerlink/company-service/entity"
	"github.com/careerlink/company-service/infra"
	"github.com/careerlink/company-service/repository"
)

// Bucket purposes. Each company gets one bucket per purpose, named through
// utils.BucketName.
const (
	PurposeLogo      = "logo"
	PurposeDocuments = "documents"

	LogoObjectName = "logo"
)

// CompanyStore is the persistence surface the aggregator needs.
type CompanyStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
}

// AddressFetcher resolves address records from the address microservice.
type AddressFetcher interface {
	FetchByID(ctx context.Context, addressID uuid.UUID, token string) (*entity.Address, error)
}

// UserFetcher resolves user records from the user microservice.
type UserFetcher interface {
	FetchByID(ctx context.Context, userID uuid.UUID, token string) (*entity.UserAccount, error)
}

// ObjectStorage is the object-storage surface (buckets, objects, presign).
type ObjectStorage interface {
	EnsureBucket(ctx context.Context, bucketName string, public bool) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string, public bool) error
	RemoveObject(ctx context.Context, bucketName, objectName string) error
	ObjectExists(ctx context.Context, bucketName, objectName string) (bool, error)
	PresignedReadURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
}

// EventPublisher announces company mutations to downstream consumers.
type EventPublisher interface {
	PublishDocumentAdded(ctx context.Context, companyID uuid.UUID, bucket, objectName, url string) error
	PublishDocumentRemoved(ctx context.Context, companyID uuid.UUID, bucket, objectName string) error
	PublishLogoUpdated(ctx context.Context, companyID uuid.UUID, url string) error
}

// Logger is the subset of infra.LoggerClient the providers use.
type Logger interface {
	InfoWithContextf(ctx context.Context, format string, args ...interface{})
	WarningWithContextf(ctx context.Context, format string, args ...interface{})
	ErrorWithContextf(ctx context.Context, err error, format string, args ...interface{})
}

type Provider struct {
	Aggregator *CompanyAggregator
	Access     *AccessPolicy
}

func InitProvider(cfg *config.Config, infra *infra.Infra, repo *repository.Repository) *Provider {
	aggregator := &CompanyAggregator{
		Store:          repo.CompanyRepo,
		Addresses:      infra.AddressService,
		Storage:        infra.Minio,
		Events:         infra.Produce.CompanyEvents,
		Logger:         infra.Logger,
		GatewayBaseURI: cfg.EnvConfig.ExternalService.GatewayBaseURI,
		PublicBaseURI:  cfg.EnvConfig.Minio.BaseURI,
	}

	access := &AccessPolicy{
		Users:   infra.UserService,
		Storage: infra.Minio,
	}

	return &Provider{
		Aggregator: aggregator,
		Access:     access,
	}
}
