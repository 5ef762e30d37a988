package errors

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/Mikanister/baloon-calc-sub001/pkg/export"
	"github.com/Mikanister/baloon-calc-sub001/pkg/gas"
	"github.com/Mikanister/baloon-calc-sub001/pkg/material"
	"github.com/Mikanister/baloon-calc-sub001/pkg/shape"
	"github.com/Mikanister/baloon-calc-sub001/pkg/solver"
)

func TestErrorString(t *testing.T) {
	e := Wrap(TypeParsing, "reading design", io.ErrUnexpectedEOF)
	if got, want := e.Error(), "[PARSING_ERROR] reading design: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got, want := Input("volume must be positive").Error(), "[INPUT_ERROR] volume must be positive"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if Newf(TypeConfig, "bad %s", "addr").Message != "bad addr" {
		t.Error("Newf did not format the message")
	}
}

func TestWithContext(t *testing.T) {
	e := Input("bad gores").WithContext("gores", 40)
	if e.Context["gores"] != 40 {
		t.Errorf("context = %v", e.Context)
	}
}

func TestIsTypeThroughWrapping(t *testing.T) {
	inner := Parsing("bad body", io.EOF)
	outer := fmt.Errorf("handling request: %w", inner)
	if !IsType(outer, TypeParsing) {
		t.Error("IsType should see through fmt wrapping")
	}
	if IsType(outer, TypeInput) {
		t.Error("IsType matched the wrong type")
	}
	if IsType(io.EOF, TypeInternal) {
		t.Error("plain error is not an *Error")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want Type
	}{
		{nil, ""},
		{&solver.NoLiftError{}, TypePhysics},
		{&solver.NotConvergedError{Iterations: 20}, TypeConvergence},
		{&solver.NonPositiveTargetError{Field: "payload"}, TypeInput},
		{&gas.UnsupportedKindError{Kind: "argon"}, TypeNotSupported},
		{&shape.UnsupportedKindError{Kind: "torus"}, TypeNotSupported},
		{&shape.DegenerateProfileError{Kind: shape.Cigar}, TypeInput},
		{&material.UnknownError{Name: "Kevlar"}, TypeNotSupported},
		{&export.UnsupportedFormatError{Format: "stl"}, TypeNotSupported},
		{fmt.Errorf("solving: %w", &solver.NoLiftError{}), TypePhysics},
		{Wrap(TypeConfig, "reading config", io.EOF), TypeConfig},
		{io.ErrClosedPipe, TypeInternal},
	}
	for _, tt := range tests {
		if got := Classify(tt.err); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := map[Type]int{
		TypeInput:        http.StatusBadRequest,
		TypeParsing:      http.StatusBadRequest,
		TypeNotSupported: http.StatusBadRequest,
		TypePhysics:      http.StatusUnprocessableEntity,
		TypeConvergence:  http.StatusUnprocessableEntity,
		TypeConfig:       http.StatusInternalServerError,
		TypeInternal:     http.StatusInternalServerError,
	}
	for typ, want := range tests {
		if got := HTTPStatus(typ); got != want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", typ, got, want)
		}
	}
}
