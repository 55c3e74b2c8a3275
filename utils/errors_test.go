package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("gone")))
	assert.Equal(t, KindConflict, KindOf(Conflict("stale")))
	assert.Equal(t, KindStorage, KindOf(Storage("boom", errors.New("io"))))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading company: %w", NotFound("company not found"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("x")))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(Unauthorized("x")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Forbidden("x")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(BadRequest("x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Storage("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestHTTPStatusPropagatesRemote4xx(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(Remote(http.StatusNotFound, "x")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Remote(http.StatusForbidden, "x")))
}

func TestHTTPStatusShieldsRemote5xx(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(Remote(http.StatusServiceUnavailable, "x")))
}
