// Package errors provides the typed error used at the CLI and HTTP edges.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/Mikanister/baloon-calc-sub001/pkg/export"
	"github.com/Mikanister/baloon-calc-sub001/pkg/gas"
	"github.com/Mikanister/baloon-calc-sub001/pkg/material"
	"github.com/Mikanister/baloon-calc-sub001/pkg/shape"
	"github.com/Mikanister/baloon-calc-sub001/pkg/solver"
)

// Type identifies the category of error.
type Type string

const (
	// TypeInput indicates an invalid design or request value.
	TypeInput Type = "INPUT_ERROR"

	// TypeParsing indicates a design file or request body that failed to decode.
	TypeParsing Type = "PARSING_ERROR"

	// TypePhysics indicates conditions under which the balloon cannot fly.
	TypePhysics Type = "PHYSICS_ERROR"

	// TypeConvergence indicates a volume solve that ran out of iterations.
	TypeConvergence Type = "CONVERGENCE_ERROR"

	// TypeNotSupported indicates an unknown gas, material, shape or format.
	TypeNotSupported Type = "NOT_SUPPORTED"

	// TypeConfig indicates a configuration error.
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error.
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error is a categorised error with optional context.
type Error struct {
	Type    Type           `json:"type"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Context map[string]any `json:"context,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds a context value and returns e.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// New creates a new error.
func New(errType Type, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Newf creates a new formatted error.
func Newf(errType Type, format string, args ...any) *Error {
	return &Error{Type: errType, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps cause with a type and message.
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{Type: errType, Message: message, Cause: cause}
}

// Input creates an input error.
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Parsing wraps a decode failure.
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Internal wraps an unexpected failure.
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}

// IsType reports whether err or anything it wraps is an *Error of type t.
func IsType(err error, t Type) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Type == t
}

// Classify returns the type of err, looking through wrapping for an *Error
// or one of the domain errors of the solver packages.
func Classify(err error) Type {
	if err == nil {
		return ""
	}

	var typed *Error
	if stderrors.As(err, &typed) {
		return typed.Type
	}

	var (
		noLift      *solver.NoLiftError
		nonPositive *solver.NonPositiveTargetError
		notConv     *solver.NotConvergedError
		gasKind     *gas.UnsupportedKindError
		shapeKind   *shape.UnsupportedKindError
		degenerate  *shape.DegenerateProfileError
		paramsKind  *shape.ParamsKindError
		unknownMat  *material.UnknownError
		format      *export.UnsupportedFormatError
	)
	switch {
	case stderrors.As(err, &noLift):
		return TypePhysics
	case stderrors.As(err, &notConv):
		return TypeConvergence
	case stderrors.As(err, &gasKind), stderrors.As(err, &shapeKind),
		stderrors.As(err, &unknownMat), stderrors.As(err, &format):
		return TypeNotSupported
	case stderrors.As(err, &nonPositive), stderrors.As(err, &degenerate), stderrors.As(err, &paramsKind):
		return TypeInput
	}
	return TypeInternal
}

// HTTPStatus maps an error type to a response status.
func HTTPStatus(t Type) int {
	switch t {
	case TypeInput, TypeParsing, TypeNotSupported:
		return http.StatusBadRequest
	case TypePhysics, TypeConvergence:
		return http.StatusUnprocessableEntity
	case "":
		return http.StatusOK
	}
	return http.StatusInternalServerError
}
