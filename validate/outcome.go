// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Code classifies the result of a validation.
type Code int

const (
	Success Code = iota
	UnknownDistribution
	CountMismatch
	NonFiniteOrOutOfRange
	MathConstraintViolation
	NullInput
)

var codeNames = [...]string{
	Success:                 "success",
	UnknownDistribution:     "unknown distribution",
	CountMismatch:           "count mismatch",
	NonFiniteOrOutOfRange:   "non-finite or out of range",
	MathConstraintViolation: "math constraint violation",
	NullInput:               "null input",
}

var codeDescriptions = [...]string{
	Success:                 "Validation successful",
	UnknownDistribution:     "Unknown distribution type",
	CountMismatch:           "Invalid parameter count",
	NonFiniteOrOutOfRange:   "Parameter not finite or out of valid range",
	MathConstraintViolation: "Mathematical constraint violation",
	NullInput:               "Null input",
}

func (c Code) valid() bool {
	return c >= 0 && int(c) < len(codeNames)
}

func (c Code) String() string {
	if !c.valid() {
		return "Code(" + strconv.Itoa(int(c)) + ")"
	}
	return codeNames[c]
}

// Description returns a human-readable sentence describing c.
func (c Code) Description() string {
	if !c.valid() {
		return "Unknown validation error"
	}
	return codeDescriptions[c]
}

// Sentinel errors wrapped by Error, one per failure code.
var (
	ErrUnknownDistribution = errors.New("unknown distribution")
	ErrCountMismatch       = errors.New("parameter count mismatch")
	ErrOutOfRange          = errors.New("parameter not finite or out of range")
	ErrConstraint          = errors.New("mathematical constraint violation")
	ErrNullInput           = errors.New("null input")
)

var codeErrors = map[Code]error{
	UnknownDistribution:     ErrUnknownDistribution,
	CountMismatch:           ErrCountMismatch,
	NonFiniteOrOutOfRange:   ErrOutOfRange,
	MathConstraintViolation: ErrConstraint,
	NullInput:               ErrNullInput,
}

// An Outcome is the result of validating distribution parameters.
type Outcome struct {
	Code Code

	// Index is the offending parameter. It is meaningful only
	// if HasIndex.
	Index    int
	HasIndex bool

	// Message is a human-readable explanation. It is empty on
	// success.
	Message string

	// Suggested is a replacement value for the offending
	// parameter. It is meaningful only if HasSuggestion.
	Suggested     float64
	HasSuggestion bool
}

// OK reports whether o is a successful outcome.
func (o Outcome) OK() bool {
	return o.Code == Success
}

// Err returns nil if o is successful and an *Error otherwise.
func (o Outcome) Err() error {
	if o.OK() {
		return nil
	}
	return &Error{Outcome: o}
}

// Error is the error form of a failed Outcome. It wraps the
// sentinel error of its code, so errors.Is(err, ErrConstraint) and
// similar tests work.
type Error struct {
	Outcome
}

func (e *Error) Error() string {
	return e.Code.String() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return codeErrors[e.Code]
}

func success() Outcome {
	return Outcome{Code: Success}
}

func failure(code Code, msg string) Outcome {
	return Outcome{Code: code, Message: msg}
}

func (o Outcome) at(i int) Outcome {
	o.Index, o.HasIndex = i, true
	return o
}

func (o Outcome) suggest(v float64) Outcome {
	o.Suggested, o.HasSuggestion = v, true
	return o
}
