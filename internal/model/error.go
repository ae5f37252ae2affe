package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeInvalidFileType    = "INVALID_FILE_TYPE"
	ErrCodeEmptyFile          = "EMPTY_FILE"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeSlideNotFound      = "SLIDE_NOT_FOUND"
	ErrCodeNothingDeleted     = "NOTHING_DELETED"
	ErrCodeImageRequired      = "IMAGE_REQUIRED"
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError carries a stable machine-readable code alongside the
// human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidFileType    = NewDomainError(ErrCodeInvalidFileType, "Invalid file type")
	ErrEmptyFile          = NewDomainError(ErrCodeEmptyFile, "File is empty or invalid format")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrSlideNotFound      = NewDomainError(ErrCodeSlideNotFound, "Slide not found")
	ErrNothingDeleted     = NewDomainError(ErrCodeNothingDeleted, "No products found to delete")
	ErrImageRequired      = NewDomainError(ErrCodeImageRequired, "No image uploaded")
	ErrStorageUnavailable = NewDomainError(ErrCodeStorageUnavailable, "Catalogue storage is unavailable")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid username or password")
)
