package errors

import (
	"net/http"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches on the business code so that WithDetails copies still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message, keeping the code
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Session errors
	ErrLoginRequired = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_REQUIRED",
		"Debes iniciar sesión",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"La sesión expiró, inicia sesión de nuevo",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciales inválidas",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"No tienes permiso para esta acción",
		"",
	)

	// Backend errors
	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"No se pudo contactar al servidor",
		"",
	)

	ErrProductsLoadFailed = NewBaseError(
		http.StatusBadGateway,
		"PRODUCTS_LOAD_FAILED",
		"No se pudieron cargar los productos",
		"",
	)

	ErrCategoriesLoadFailed = NewBaseError(
		http.StatusBadGateway,
		"CATEGORIES_LOAD_FAILED",
		"No se pudieron cargar las categorías",
		"",
	)

	ErrConfigurationLoadFailed = NewBaseError(
		http.StatusBadGateway,
		"CONFIGURATION_LOAD_FAILED",
		"No se pudo cargar la configuración",
		"",
	)

	ErrConfigurationSaveFailed = NewBaseError(
		http.StatusBadGateway,
		"CONFIGURATION_SAVE_FAILED",
		"Error al guardar",
		"",
	)

	ErrProductSaveFailed = NewBaseError(
		http.StatusBadGateway,
		"PRODUCT_SAVE_FAILED",
		"No se pudo guardar el producto",
		"",
	)

	// Catalog errors
	ErrProductNotSaved = NewBaseError(
		http.StatusConflict,
		"PRODUCT_NOT_SAVED",
		"Primero debes guardar el producto antes de subir una imagen",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Producto no encontrado",
		"",
	)

	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"La imagen no es válida",
		"",
	)

	// Order errors
	ErrOutOfStock = NewBaseError(
		http.StatusConflict,
		"OUT_OF_STOCK",
		"Producto agotado",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"La cantidad debe ser mayor que cero",
		"",
	)

	ErrEmptyOrder = NewBaseError(
		http.StatusConflict,
		"EMPTY_ORDER",
		"La orden está vacía",
		"",
	)

	// Configuration errors
	ErrUnsupportedLanguage = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_LANGUAGE",
		"Idioma no soportado",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Datos inválidos",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno",
		"",
	)
)
