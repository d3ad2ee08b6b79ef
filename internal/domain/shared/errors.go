package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrMissingCustomerInfo = NewDomainError("MISSING_CUSTOMER_INFO", "Please enter your name and email.")
	ErrEmptyCart           = NewDomainError("EMPTY_CART", "Please select at least one product quantity > 0.")
)

// validationCodes are the error codes that are recoverable by correcting user input.
var validationCodes = map[string]bool{
	"MISSING_CUSTOMER_INFO": true,
	"EMPTY_CART":            true,
}

// IsValidation reports whether the error is a user-correctable validation error,
// as opposed to a persistence or internal failure.
func IsValidation(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return validationCodes[domainErr.Code]
	}
	return false
}
