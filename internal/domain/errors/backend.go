package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// FieldValidationError carries the backend's per-field rejection reasons verbatim
type FieldValidationError struct {
	status int
	fields map[string][]string
}

// NewFieldValidationError creates a field-level validation error from a backend 4xx body
func NewFieldValidationError(status int, fields map[string][]string) *FieldValidationError {
	return &FieldValidationError{status: status, fields: fields}
}

func (e *FieldValidationError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.fields[k], " ")))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *FieldValidationError) HTTPCode() int {
	return e.status
}

func (e *FieldValidationError) ErrorCode() string {
	return "FIELD_VALIDATION_FAILED"
}

func (e *FieldValidationError) Message() string {
	return "Revisa los campos marcados"
}

func (e *FieldValidationError) Details() string {
	return e.Error()
}

// Fields returns the field map exactly as the backend sent it
func (e *FieldValidationError) Fields() map[string][]string {
	return e.fields
}

// BackendStatusError represents a non-field 4xx/5xx rejection from the backend
type BackendStatusError struct {
	Status int
	Detail string
}

// NewBackendStatusError creates a status error, Detail is the backend's "detail" text when present
func NewBackendStatusError(status int, detail string) *BackendStatusError {
	return &BackendStatusError{Status: status, Detail: detail}
}

func (e *BackendStatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend responded %d", e.Status)
	}

	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Detail)
}

func (e *BackendStatusError) HTTPCode() int {
	switch {
	case e.Status == http.StatusForbidden, e.Status == http.StatusNotFound, e.Status == http.StatusConflict:
		return e.Status
	case e.Status >= 400 && e.Status < 500:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func (e *BackendStatusError) ErrorCode() string {
	return fmt.Sprintf("BACKEND_%d", e.Status)
}

func (e *BackendStatusError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}

	return http.StatusText(e.Status)
}

func (e *BackendStatusError) Details() string {
	return e.Error()
}
