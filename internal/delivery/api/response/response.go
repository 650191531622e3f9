// Package response writes the app shell JSON envelope.
package response

import (
	"net/http"

	deliverycontext "pos/internal/delivery/context"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-facing message, in the backend's language when it sent one
	Details any    `json:"details,omitempty"` // Per-field reasons or validation details (4xx only)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// AppError writes err when it carries an AppError. Field validation failures expose their field map.
func AppError(c echo.Context, err error) bool {
	if fieldErr, ok := errors.AsType[*domainerrors.FieldValidationError](err); ok {
		_ = Error(c, fieldErr.HTTPCode(), fieldErr.ErrorCode(), fieldErr.Message(), fieldErr.Fields())

		return true
	}

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		return false
	}

	var details any
	if appErr.HTTPCode() < http.StatusInternalServerError && appErr.Details() != "" {
		details = appErr.Details()
	}
	_ = Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

	return true
}
