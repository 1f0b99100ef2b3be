// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the error builder and the standard error constructors
//              used by all cleanfloat packages, so errors carry consistent
//              codes, module names and details.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-19 v0.1.1: Added floatx and document convenience constructors

package errors

import (
	"fmt"
	"strings"

	cferror "github.com/msto63/cleanfloat/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleFloatx   = "floatx"
	ModuleDocument = "document"
	ModuleConfig   = "config"
	ModuleCLI      = "cli"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  cferror.Severity
	code      cferror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: cferror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity cferror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code cferror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *cferror.Error {
	if eb.code == "" {
		eb.code = cferror.CodeOperationFailed
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	operation := eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
		operation = eb.module + "." + eb.operation
	}

	var err *cferror.Error
	if eb.cause != nil {
		err = cferror.Wrap(eb.cause, eb.message)
	} else {
		err = cferror.New(eb.message)
	}

	return err.
		WithSeverity(eb.severity).
		WithCode(eb.code).
		WithOperation(operation).
		WithDetails(eb.details)
}

// =============================================================================
// STANDARD ERROR CONSTRUCTORS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *cferror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: %v (expected %s)", module, operation, input, expected).
		Code(cferror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(cferror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, cause error, expectedFormat string) *cferror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format in %s, expected %s", module, expectedFormat).
		Cause(cause).
		Code(cferror.CodeInvalidFormat).
		Detail("expected_format", expectedFormat).
		Severity(cferror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *cferror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Code(cferror.CodeOperationFailed).
		Severity(cferror.SeverityHigh).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *cferror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value out of range in %s.%s: %v not in [%v, %v]", module, operation, value, min, max).
		Code(cferror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(cferror.SeverityLow).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *cferror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found in %s.%s", identifier, module, operation).
		Code(cferror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(cferror.SeverityLow).
		Build()
}

// =============================================================================
// ANALYSIS HELPERS
// =============================================================================

// ExtractModule extracts the module name from a structured error
func ExtractModule(err error) string {
	if cfErr, ok := err.(*cferror.Error); ok {
		if module, ok := cfErr.Details()["module"].(string); ok {
			return module
		}
	}
	return ""
}

// IsModuleError reports whether err was raised by the given module
func IsModuleError(err error, module string) bool {
	return strings.EqualFold(ExtractModule(err), module)
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================

// FloatxNotNumeric reports a value that cannot be cleaned because it is not a number
func FloatxNotNumeric(input interface{}) *cferror.Error {
	return InvalidInput(ModuleFloatx, "clean", input, "number or numeric string").
		WithDetail("type", fmt.Sprintf("%T", input))
}

// FloatxNegativePrecision reports a negative minimum precision
func FloatxNegativePrecision(precision int) *cferror.Error {
	return OutOfRange(ModuleFloatx, "clean", precision, 0, "unbounded")
}

// DocumentSyntax reports a JSON or YAML document that could not be parsed
func DocumentSyntax(operation string, cause error, format string) *cferror.Error {
	return InvalidFormat(ModuleDocument, operation, cause, "valid "+format+" document")
}

// DocumentWrite reports a failure writing a cleaned document
func DocumentWrite(operation string, cause error) *cferror.Error {
	return OperationFailed(ModuleDocument, operation, cause)
}
