package infra

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerlink/company-service/utils"
)

type bucketPolicy struct {
	Version   string `json:"Version"`
	Statement []struct {
		Effect    string          `json:"Effect"`
		Principal json.RawMessage `json:"Principal"`
		Action    json.RawMessage `json:"Action"`
		Resource  string          `json:"Resource"`
	} `json:"Statement"`
}

func TestBucketPolicyJSONPublic(t *testing.T) {
	var policy bucketPolicy
	require.NoError(t, json.Unmarshal([]byte(bucketPolicyJSON("my-bucket", true)), &policy))

	assert.Equal(t, "2012-10-17", policy.Version)
	require.Len(t, policy.Statement, 2)
	for _, statement := range policy.Statement {
		assert.Equal(t, "Allow", statement.Effect)
		assert.JSONEq(t, `"*"`, string(statement.Principal))
	}
	assert.Equal(t, "arn:aws:s3:::my-bucket", policy.Statement[0].Resource)
	assert.Equal(t, "arn:aws:s3:::my-bucket/*", policy.Statement[1].Resource)
}

func TestBucketPolicyJSONPrivate(t *testing.T) {
	var policy bucketPolicy
	require.NoError(t, json.Unmarshal([]byte(bucketPolicyJSON("my-bucket", false)), &policy))

	require.Len(t, policy.Statement, 2)
	for _, statement := range policy.Statement {
		assert.JSONEq(t, `{"AWS": "arn:aws:iam::company:root"}`, string(statement.Principal))
	}
}

type fakeBucketAPI struct {
	exists   bool
	makeErr  error
	made     int
	policies []string
}

func (f *fakeBucketAPI) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.exists, nil
}

func (f *fakeBucketAPI) MakeBucket(_ context.Context, _ string, _ minio.MakeBucketOptions) error {
	if f.makeErr != nil {
		return f.makeErr
	}
	f.made++
	f.exists = true
	return nil
}

func (f *fakeBucketAPI) SetBucketPolicy(_ context.Context, _ string, policy string) error {
	f.policies = append(f.policies, policy)
	return nil
}

func TestEnsureBucketIsIdempotent(t *testing.T) {
	api := &fakeBucketAPI{}

	require.NoError(t, ensureBucket(context.Background(), api, "europe", "my-bucket", false))
	require.NoError(t, ensureBucket(context.Background(), api, "europe", "my-bucket", false))

	assert.Equal(t, 1, api.made)
	assert.Len(t, api.policies, 1)
}

func TestEnsureBucketLostRaceCountsAsSuccess(t *testing.T) {
	for _, code := range []string{"BucketAlreadyOwnedByYou", "BucketAlreadyExists"} {
		api := &fakeBucketAPI{makeErr: minio.ErrorResponse{Code: code}}

		require.NoError(t, ensureBucket(context.Background(), api, "europe", "my-bucket", true))
		assert.Len(t, api.policies, 1, "policy is still applied after a lost race")
	}
}

func TestEnsureBucketSurfacesCreateFailure(t *testing.T) {
	api := &fakeBucketAPI{makeErr: minio.ErrorResponse{Code: "AccessDenied"}}

	err := ensureBucket(context.Background(), api, "europe", "my-bucket", false)

	require.Error(t, err)
	assert.Equal(t, utils.KindStorage, utils.KindOf(err))
	assert.Empty(t, api.policies)
}

func TestEnsureBucketRejectsEmptyName(t *testing.T) {
	err := ensureBucket(context.Background(), &fakeBucketAPI{}, "europe", "", false)

	require.Error(t, err)
	assert.Equal(t, utils.KindBadRequest, utils.KindOf(err))
}
