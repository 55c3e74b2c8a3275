package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerlink/company-service/entity"
	"github.com/careerlink/company-service/utils"
)

func TestUserServiceFetchByID(t *testing.T) {
	recorder := recordSpans(t)

	companyID := uuid.New()
	user := entity.UserAccount{ID: uuid.New(), Role: entity.RoleRecruiter, CompanyID: &companyID}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(user)
	}))
	defer server.Close()

	service := &UserService{UserServiceURL: server.URL, client: server.Client()}

	got, err := service.FetchByID(context.Background(), user.ID, "token123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, entity.RoleRecruiter, got.Role)
	require.NotNil(t, got.CompanyID)
	assert.Equal(t, companyID, *got.CompanyID)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "UserService.FetchByID", spans[0].Name())
}

func TestUserServiceFetchByIDPropagatesStatus(t *testing.T) {
	recordSpans(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "user not found", http.StatusNotFound)
	}))
	defer server.Close()

	service := &UserService{UserServiceURL: server.URL, client: server.Client()}

	_, err := service.FetchByID(context.Background(), uuid.New(), "token123")
	require.Error(t, err)
	assert.Equal(t, utils.KindRemote, utils.KindOf(err))
	assert.Equal(t, http.StatusNotFound, utils.HTTPStatus(err))
}
