package provider

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/careerlink/company-service/entity"
	"github.com/careerlink/company-service/utils"
)

// CompanyAggregator stitches the locally owned company record together with
// remote address records, and keeps the tracked document URL list in sync
// with the objects actually stored.
type CompanyAggregator struct {
	Store     CompanyStore
	Addresses AddressFetcher
	Storage   ObjectStorage
	Events    EventPublisher
	Logger    Logger

	// GatewayBaseURI prefixes document URLs, PublicBaseURI prefixes the
	// logo URL served straight from the public bucket.
	GatewayBaseURI string
	PublicBaseURI  string
}

// DocumentURL is the single canonical construction of a stored object's URL.
// Add and remove paths both go through it so list entries always compare
// equal.
func DocumentURL(base, bucket, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", base, bucket, objectName)
}

// GetDetails returns the hydrated company view. Address fetches run
// sequentially in list order; the first failure aborts the whole read so the
// caller never sees partial data.
func (p *CompanyAggregator) GetDetails(ctx context.Context, companyID uuid.UUID, token string) (*entity.CompanyDetails, error) {
	company, err := p.Store.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	addresses, err := p.resolveAddresses(ctx, company.AddressIDList, token)
	if err != nil {
		return nil, err
	}

	return &entity.CompanyDetails{
		ID:                   company.ID,
		Name:                 company.Name,
		LogoURL:              company.LogoURL,
		Description:          company.Description,
		EmployeesNumberRange: company.EmployeesNumberRange,
		SiretNumber:          company.SiretNumber,
		Addresses:            addresses,
		DocumentsURL:         company.DocumentsURL,
	}, nil
}

// GetAddressList resolves only the company's addresses, in list order.
func (p *CompanyAggregator) GetAddressList(ctx context.Context, companyID uuid.UUID, token string) ([]entity.Address, error) {
	company, err := p.Store.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return p.resolveAddresses(ctx, company.AddressIDList, token)
}

func (p *CompanyAggregator) resolveAddresses(ctx context.Context, addressIDs []uuid.UUID, token string) ([]entity.Address, error) {
	addresses := make([]entity.Address, 0, len(addressIDs))
	// Empty list short-circuits: no remote calls at all.
	for _, addressID := range addressIDs {
		address, err := p.Addresses.FetchByID(ctx, addressID, token)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, *address)
	}
	return addresses, nil
}

// AddDocument uploads a document into the company's private bucket and
// appends its canonical URL to the tracked list. If the upload succeeds but
// the record write fails, the divergence is reported, never swallowed.
func (p *CompanyAggregator) AddDocument(ctx context.Context, companyID uuid.UUID, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if objectName == "" {
		return "", utils.BadRequest("object name cannot be empty")
	}

	company, err := p.Store.FindByID(ctx, companyID)
	if err != nil {
		return "", err
	}

	bucket := utils.BucketName(PurposeDocuments, companyID)
	if err := p.Storage.PutObject(ctx, bucket, objectName, reader, size, contentType, false); err != nil {
		return "", err
	}

	url := DocumentURL(p.GatewayBaseURI, bucket, objectName)
	if !contains(company.DocumentsURL, url) {
		company.DocumentsURL = append(company.DocumentsURL, url)
	}

	if err := p.Store.Update(ctx, company); err != nil {
		// The object is stored but untracked. Surface it so the caller can
		// retry or clean up.
		p.Logger.ErrorWithContextf(ctx, err, "[Company] Document %s uploaded to bucket %s but company %s was not updated", objectName, bucket, companyID)
		return "", err
	}

	if err := p.Events.PublishDocumentAdded(ctx, companyID, bucket, objectName, url); err != nil {
		p.Logger.WarningWithContextf(ctx, "[Company] Failed to publish document.added for company %s: %v", companyID, err)
	}

	return url, nil
}

// RemoveDocument deletes the object and drops its URL from the tracked list.
// Removing an absent document succeeds.
func (p *CompanyAggregator) RemoveDocument(ctx context.Context, companyID uuid.UUID, objectName string) error {
	company, err := p.Store.FindByID(ctx, companyID)
	if err != nil {
		return err
	}

	bucket := utils.BucketName(PurposeDocuments, companyID)
	if err := p.Storage.RemoveObject(ctx, bucket, objectName); err != nil {
		return err
	}

	url := DocumentURL(p.GatewayBaseURI, bucket, objectName)
	company.DocumentsURL = remove(company.DocumentsURL, url)

	if err := p.Store.Update(ctx, company); err != nil {
		p.Logger.ErrorWithContextf(ctx, err, "[Company] Document %s removed from bucket %s but company %s was not updated", objectName, bucket, companyID)
		return err
	}

	if err := p.Events.PublishDocumentRemoved(ctx, companyID, bucket, objectName); err != nil {
		p.Logger.WarningWithContextf(ctx, "[Company] Failed to publish document.removed for company %s: %v", companyID, err)
	}

	return nil
}

// PresignDocument issues a read capability for one private document.
func (p *CompanyAggregator) PresignDocument(ctx context.Context, companyID uuid.UUID, objectName string, expiry time.Duration) (string, error) {
	bucket := utils.BucketName(PurposeDocuments, companyID)
	return p.Storage.PresignedReadURL(ctx, bucket, objectName, expiry)
}

// SetLogo uploads the logo into the company's public bucket and overwrites
// the logo URL field.
func (p *CompanyAggregator) SetLogo(ctx context.Context, companyID uuid.UUID, reader io.Reader, size int64, contentType string) (string, error) {
	company, err := p.Store.FindByID(ctx, companyID)
	if err != nil {
		return "", err
	}

	bucket := utils.BucketName(PurposeLogo, companyID)
	if err := p.Storage.PutObject(ctx, bucket, LogoObjectName, reader, size, contentType, true); err != nil {
		return "", err
	}

	url := DocumentURL(p.PublicBaseURI, bucket, LogoObjectName)
	company.LogoURL = url

	if err := p.Store.Update(ctx, company); err != nil {
		p.Logger.ErrorWithContextf(ctx, err, "[Company] Logo uploaded to bucket %s but company %s was not updated", bucket, companyID)
		return "", err
	}

	if err := p.Events.PublishLogoUpdated(ctx, companyID, url); err != nil {
		p.Logger.WarningWithContextf(ctx, "[Company] Failed to publish logo.updated for company %s: %v", companyID, err)
	}

	return url, nil
}

func contains(list []string, value string) bool {
	for _, entry := range list {
		if entry == value {
			return true
		}
	}
	return false
}

func remove(list []string, value string) []string {
	filtered := make([]string, 0, len(list))
	for _, entry := range list {
		if entry != value {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
