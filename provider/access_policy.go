package provider

import (
	"context"

	"github.com/google/uuid"

	"github.com/careerlink/company-service/entity"
	"github.com/careerlink/company-service/utils"
)

// AccessPolicy evaluates membership rules against the user microservice.
// Handlers invoke it explicitly with the caller's credential and the target
// company; there is no ambient security context.
type AccessPolicy struct {
	Users   UserFetcher
	Storage ObjectStorage
}

// IsMember reports whether the credential's subject is a recruiter of the
// given company. A user without the recruiter role or without any company
// association is rejected with Forbidden; a recruiter of another company is
// simply not a member (false, no error).
func (a *AccessPolicy) IsMember(ctx context.Context, companyID uuid.UUID, credential string) (bool, error) {
	userID, err := utils.SubjectFromToken(credential)
	if err != nil {
		return false, utils.Unauthorized(err.Error())
	}

	user, err := a.Users.FetchByID(ctx, userID, credential)
	if err != nil {
		return false, err
	}

	if user.Role != entity.RoleRecruiter || user.CompanyID == nil {
		return false, utils.Forbidden("user is not a recruiter")
	}

	return *user.CompanyID == companyID, nil
}

// CanAccessDocument grants access only when the caller is a member of the
// company and the document actually exists. An absent object yields false,
// not an error.
func (a *AccessPolicy) CanAccessDocument(ctx context.Context, companyID uuid.UUID, objectName, credential string) (bool, error) {
	member, err := a.IsMember(ctx, companyID, credential)
	if err != nil {
		return false, err
	}
	if !member {
		return false, nil
	}

	bucket := utils.BucketName(PurposeDocuments, companyID)
	exists, err := a.Storage.ObjectExists(ctx, bucket, objectName)
	if err != nil {
		return false, err
	}

	return exists, nil
}
