package errors

import "net/http"

// ErrorCode is a string identifier for a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeCacheError         ErrorCode = "COMMON_012"
	ErrCodeStorageError       ErrorCode = "COMMON_013"
)

// Glycan format and notation error codes.
const (
	ErrCodeParseError         ErrorCode = "GLY_001"
	ErrCodeNotationUnknown    ErrorCode = "GLY_002"
	ErrCodeGlycanNotFound     ErrorCode = "GLY_003"
	ErrCodeVariantUnavailable ErrorCode = "GLY_004"
)

// External conversion error codes.
const (
	ErrCodeConversionUnavailable ErrorCode = "CNV_001"
	ErrCodeConversionRejected    ErrorCode = "CNV_002"
)

// Catalog error codes.
const (
	ErrCodeCatalogLoadFailed ErrorCode = "CAT_001"
	ErrCodeCatalogCorrupt    ErrorCode = "CAT_002"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Codes absent
// from the map resolve to 500.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeStorageError:       http.StatusInternalServerError,

	ErrCodeParseError:         http.StatusBadRequest,
	ErrCodeNotationUnknown:    http.StatusBadRequest,
	ErrCodeGlycanNotFound:     http.StatusNotFound,
	ErrCodeVariantUnavailable: http.StatusNotFound,

	ErrCodeConversionUnavailable: http.StatusBadGateway,
	ErrCodeConversionRejected:    http.StatusUnprocessableEntity,

	ErrCodeCatalogLoadFailed: http.StatusInternalServerError,
	ErrCodeCatalogCorrupt:    http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status code associated with c.
func (c ErrorCode) HTTPStatus() int {
	if status, ok := ErrorCodeHTTPStatus[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}
