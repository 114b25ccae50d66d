package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeUnit represents unparsable capacity strings
	ErrorTypeUnit ErrorType = "unparsable_unit"
	// ErrorTypePrice represents unparsable price strings
	ErrorTypePrice ErrorType = "unparsable_price"
	// ErrorTypeNetwork represents network-related errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeRateLimit represents rate limiting errors
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeSource represents adapter-level failures for a whole retailer page
	ErrorTypeSource ErrorType = "source_unavailable"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// ScrapeError represents a pipeline-specific error
type ScrapeError struct {
	Type    ErrorType
	Source  string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Source, e.Message, e.Err)
	}
	if e.Source == "" {
		return fmt.Sprintf("[%s] %s", e.Type, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Source, e.Message)
}

// Unwrap returns the underlying error
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error is retryable
func (e *ScrapeError) IsRetryable() bool {
	return e.Type == ErrorTypeNetwork
}

// IsType reports whether err is a ScrapeError of the given type
func IsType(err error, errType ErrorType) bool {
	var se *ScrapeError
	if stderrors.As(err, &se) {
		return se.Type == errType
	}
	return false
}

// New creates a new ScrapeError
func New(errType ErrorType, source, message string, err error) *ScrapeError {
	return &ScrapeError{
		Type:    errType,
		Source:  source,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewUnit creates an error for a capacity string that could not be parsed
func NewUnit(text string) *ScrapeError {
	return New(ErrorTypeUnit, "", fmt.Sprintf("no recognized capacity unit in %q", text), nil)
}

// NewPrice creates an error for a price string that could not be parsed
func NewPrice(text, reason string) *ScrapeError {
	return New(ErrorTypePrice, "", fmt.Sprintf("%s: %q", reason, text), nil)
}

// NewNetwork creates a new network error
func NewNetwork(source, message string, err error) *ScrapeError {
	return New(ErrorTypeNetwork, source, message, err)
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(source string, duration time.Duration) *ScrapeError {
	return New(ErrorTypeRateLimit, source, fmt.Sprintf("rate limited for %v", duration), nil)
}

// NewSource creates an error for a retailer page the adapter could not work with
func NewSource(source, message string) *ScrapeError {
	return New(ErrorTypeSource, source, message, nil)
}

// NewValidation creates a new validation error
func NewValidation(source, message string) *ScrapeError {
	return New(ErrorTypeValidation, source, message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *ScrapeError {
	return New(ErrorTypeConfiguration, "", message, err)
}
