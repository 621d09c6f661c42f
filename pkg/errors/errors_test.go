package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := New(ErrCodeParseError, "malformed WURCS header")
	assert.Equal(t, "[GLY_001] malformed WURCS header", err.Error())

	withDetail := err.WithDetail("input=WURCS=2.0/bogus")
	assert.Equal(t, "[GLY_001] malformed WURCS header: input=WURCS=2.0/bogus", withDetail.Error())
	// The original is untouched.
	assert.Empty(t, err.Detail)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "should be nil"))

	cause := stderrors.New("connection refused")
	err := Wrap(cause, ErrCodeConversionUnavailable, "glycosmos request failed")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrCodeConversionUnavailable, GetCode(err))
}

func TestIsCode_TraversesChain(t *testing.T) {
	inner := New(ErrCodeParseError, "bad residue list")
	outer := fmt.Errorf("resolving identifier: %w", inner)

	assert.True(t, IsCode(outer, ErrCodeParseError))
	assert.False(t, IsCode(outer, ErrCodeNotFound))
	assert.True(t, IsParseError(outer))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("no such glycan")))
	assert.True(t, IsNotFound(New(ErrCodeGlycanNotFound, "gone")))
	assert.True(t, IsNotFound(New(ErrCodeVariantUnavailable, "no beta form")))
	assert.False(t, IsNotFound(New(ErrCodeParseError, "nope")))
	assert.False(t, IsNotFound(nil))
}

func TestIsConversionUnavailable(t *testing.T) {
	assert.True(t, IsConversionUnavailable(ConversionUnavailable("down")))
	assert.True(t, IsConversionUnavailable(New(ErrCodeConversionRejected, "bad input")))
	assert.False(t, IsConversionUnavailable(Internal("boom")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrCodeGlycanNotFound.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, ErrCodeParseError.HTTPStatus())
	assert.Equal(t, http.StatusBadGateway, ErrCodeConversionUnavailable.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ErrorCode("UNMAPPED").HTTPStatus())
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrorCode("OK"), GetCode(nil))
	assert.Equal(t, ErrCodeInternal, GetCode(stderrors.New("plain")))
	assert.Equal(t, ErrCodeCatalogCorrupt, GetCode(New(ErrCodeCatalogCorrupt, "bad record")))
}
