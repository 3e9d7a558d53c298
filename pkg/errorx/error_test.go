package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(BadRequest, "Exceed the maximum of limit (%d)", 50)
	require.Equal(t, BadRequest, err.Code)
	require.Equal(t, "Exceed the maximum of limit (50)", err.Error())
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", New(AlreadyExists, "Already in favorites"))
	require.True(t, errors.Is(wrapped, Error{Code: AlreadyExists}))
	require.False(t, errors.Is(wrapped, Error{Code: NotFound}))

	var errx Error
	require.True(t, errors.As(wrapped, &errx))
	require.Equal(t, "Already in favorites", errx.Message)
}

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, BadRequest.HTTPStatus())
	require.Equal(t, http.StatusConflict, AlreadyExists.HTTPStatus())
	require.Equal(t, http.StatusUnauthorized, Unauthenticated.HTTPStatus())
	require.Equal(t, http.StatusBadGateway, VendorFailed.HTTPStatus())
	require.Equal(t, http.StatusInternalServerError, Unknown.Code.HTTPStatus())
}
