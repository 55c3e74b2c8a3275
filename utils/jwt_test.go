package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSubjectFromToken(t *testing.T) {
	userID := uuid.New()
	token := testToken(t, jwt.MapClaims{"sub": userID.String()})

	subject, err := SubjectFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)

	// A forwarded "Bearer " prefix is tolerated.
	subject, err = SubjectFromToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestSubjectFromTokenMalformed(t *testing.T) {
	_, err := SubjectFromToken("not-a-token")
	assert.Error(t, err)
}

func TestSubjectFromTokenMissingSub(t *testing.T) {
	token := testToken(t, jwt.MapClaims{"role": "recruiter"})
	_, err := SubjectFromToken(token)
	assert.Error(t, err)
}

func TestSubjectFromTokenInvalidSub(t *testing.T) {
	token := testToken(t, jwt.MapClaims{"sub": "not-a-uuid"})
	_, err := SubjectFromToken(token)
	assert.Error(t, err)
}
