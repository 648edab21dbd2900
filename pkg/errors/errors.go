package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeDiscord represents Discord platform errors
	ErrorTypeDiscord ErrorType = "discord"
	// ErrorTypeNotFound represents failed guild/channel resolution
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeValidation represents tool parameter schema violations
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// Diagnostic returns the human-readable message without the type prefix.
// Handlers embed it in tool results so the calling agent can self-correct.
func (e *BaseError) Diagnostic() string {
	return e.Message
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Resolution errors

// GuildNotFoundError is returned when a guild cannot be resolved, including
// the ambiguous cases (no guilds joined, multiple guilds and no reference).
type GuildNotFoundError struct {
	*BaseError
	Reference string
}

func NewGuildNotFound(reference, diagnostic string) *GuildNotFoundError {
	return &GuildNotFoundError{
		BaseError: NewBaseError(ErrorTypeNotFound, diagnostic, nil),
		Reference: reference,
	}
}

// ChannelNotFoundError is returned when a channel cannot be resolved within
// its guild.
type ChannelNotFoundError struct {
	*BaseError
	Reference string
}

func NewChannelNotFound(reference, diagnostic string) *ChannelNotFoundError {
	return &ChannelNotFoundError{
		BaseError: NewBaseError(ErrorTypeNotFound, diagnostic, nil),
		Reference: reference,
	}
}

// Validation errors

// ValidationError aggregates every parameter violation of one tool call.
type ValidationError struct {
	*BaseError
	Violations []string
}

func NewValidationFailed(violations []string) *ValidationError {
	return &ValidationError{
		BaseError:  NewBaseError(ErrorTypeValidation, "Invalid arguments: "+strings.Join(violations, ", "), nil),
		Violations: violations,
	}
}

// Config errors

// ConfigMissingRequiredError is returned when a required config value is missing
type ConfigMissingRequiredError struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ConfigMissingRequiredError {
	return &ConfigMissingRequiredError{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// ConfigValidationFailedError is returned when configuration validation fails
type ConfigValidationFailedError struct {
	*BaseError
	Field  string
	Reason string
}

func NewConfigValidationFailed(field, reason string) *ConfigValidationFailedError {
	return &ConfigValidationFailedError{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("config validation failed: %s - %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// Helper functions

type typed interface {
	error
	errorType() ErrorType
}

func (e *BaseError) errorType() ErrorType { return e.Type }

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	if t, ok := err.(typed); ok {
		return t.errorType() == errType
	}
	if wrapped, ok := err.(interface{ Unwrap() error }); ok {
		if inner := wrapped.Unwrap(); inner != nil {
			return IsErrorType(inner, errType)
		}
	}
	return false
}

// IsNotFound reports whether err represents a failed resolution that should
// become an informative success rather than a hard failure.
func IsNotFound(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// Diagnostic extracts the human-readable message from a typed error, falling
// back to Error() for anything else.
func Diagnostic(err error) string {
	if d, ok := err.(interface{ Diagnostic() string }); ok {
		return d.Diagnostic()
	}
	return err.Error()
}
