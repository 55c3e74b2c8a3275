package provider

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerlink/company-service/entity"
	"github.com/careerlink/company-service/utils"
)

type fakeUserFetcher struct {
	users map[uuid.UUID]entity.UserAccount
	err   error
}

func (f *fakeUserFetcher) FetchByID(_ context.Context, userID uuid.UUID, _ string) (*entity.UserAccount, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[userID]
	if !ok {
		return nil, utils.Remote(http.StatusNotFound, "user not found")
	}
	return &user, nil
}

func signedToken(t *testing.T, subject uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject.String()})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestIsMemberMatchingCompany(t *testing.T) {
	companyID := uuid.New()
	userID := uuid.New()
	policy := &AccessPolicy{
		Users: &fakeUserFetcher{users: map[uuid.UUID]entity.UserAccount{
			userID: {ID: userID, Role: entity.RoleRecruiter, CompanyID: &companyID},
		}},
		Storage: newFakeStorage(),
	}

	member, err := policy.IsMember(context.Background(), companyID, signedToken(t, userID))

	require.NoError(t, err)
	assert.True(t, member)
}

func TestIsMemberMismatchedCompanyIsFalseNotError(t *testing.T) {
	otherCompany := uuid.New()
	userID := uuid.New()
	policy := &AccessPolicy{
		Users: &fakeUserFetcher{users: map[uuid.UUID]entity.UserAccount{
			userID: {ID: userID, Role: entity.RoleRecruiter, CompanyID: &otherCompany},
		}},
		Storage: newFakeStorage(),
	}

	member, err := policy.IsMember(context.Background(), uuid.New(), signedToken(t, userID))

	require.NoError(t, err)
	assert.False(t, member)
}

func TestIsMemberNonRecruiterIsForbidden(t *testing.T) {
	companyID := uuid.New()
	userID := uuid.New()
	policy := &AccessPolicy{
		Users: &fakeUserFetcher{users: map[uuid.UUID]entity.UserAccount{
			userID: {ID: userID, Role: "candidate", CompanyID: &companyID},
		}},
		Storage: newFakeStorage(),
	}

	_, err := policy.IsMember(context.Background(), companyID, signedToken(t, userID))

	require.Error(t, err)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
}

func TestIsMemberRecruiterWithoutCompanyIsForbidden(t *testing.T) {
	userID := uuid.New()
	policy := &AccessPolicy{
		Users: &fakeUserFetcher{users: map[uuid.UUID]entity.UserAccount{
			userID: {ID: userID, Role: entity.RoleRecruiter, CompanyID: nil},
		}},
		Storage: newFakeStorage(),
	}

	_, err := policy.IsMember(context.Background(), uuid.New(), signedToken(t, userID))

	require.Error(t, err)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
}

func TestIsMemberPropagatesUserServiceStatus(t *testing.T) {
	policy := &AccessPolicy{
		Users:   &fakeUserFetcher{},
		Storage: newFakeStorage(),
	}

	_, err := policy.IsMember(context.Background(), uuid.New(), signedToken(t, uuid.New()))

	require.Error(t, err)
	assert.Equal(t, utils.KindRemote, utils.KindOf(err))
	assert.Equal(t, http.StatusNotFound, utils.HTTPStatus(err))
}

func TestIsMemberMalformedToken(t *testing.T) {
	policy := &AccessPolicy{
		Users:   &fakeUserFetcher{},
		Storage: newFakeStorage(),
	}

	_, err := policy.IsMember(context.Background(), uuid.New(), "not-a-token")

	require.Error(t, err)
	assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))
}

func TestCanAccessDocumentRequiresMembershipAndObject(t *testing.T) {
	companyID := uuid.New()
	userID := uuid.New()
	storage := newFakeStorage()
	policy := &AccessPolicy{
		Users: &fakeUserFetcher{users: map[uuid.UUID]entity.UserAccount{
			userID: {ID: userID, Role: entity.RoleRecruiter, CompanyID: &companyID},
		}},
		Storage: storage,
	}

	ctx := context.Background()
	token := signedToken(t, userID)
	bucket := utils.BucketName(PurposeDocuments, companyID)

	// Member but the object is absent: false, not an error.
	allowed, err := policy.CanAccessDocument(ctx, companyID, "contract.pdf", token)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, storage.PutObject(ctx, bucket, "contract.pdf", bytes.NewBufferString("content"), 7, "application/pdf", false))

	allowed, err = policy.CanAccessDocument(ctx, companyID, "contract.pdf", token)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCanAccessDocumentNonMember(t *testing.T) {
	otherCompany := uuid.New()
	userID := uuid.New()
	companyID := uuid.New()
	storage := newFakeStorage()
	policy := &AccessPolicy{
		Users: &fakeUserFetcher{users: map[uuid.UUID]entity.UserAccount{
			userID: {ID: userID, Role: entity.RoleRecruiter, CompanyID: &otherCompany},
		}},
		Storage: storage,
	}

	ctx := context.Background()
	bucket := utils.BucketName(PurposeDocuments, companyID)
	require.NoError(t, storage.PutObject(ctx, bucket, "contract.pdf", bytes.NewBufferString("content"), 7, "application/pdf", false))

	allowed, err := policy.CanAccessDocument(ctx, companyID, "contract.pdf", signedToken(t, userID))

	require.NoError(t, err)
	assert.False(t, allowed, "membership in another company grants nothing")
}
