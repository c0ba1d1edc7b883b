// SPDX-License-Identifier: MIT

// Package fault carries the coded errors of the latred command line.
//
// Core packages (vector, matrix, lattice) return plain sentinel errors.
// The CLI wraps them here with a machine-readable Code so the process exit
// status and log fields can be derived without string matching.
package fault

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/oops"
)

// Code is the machine-readable identifier for an error.
type Code string

const (
	CodeCLIInputInvalid            Code = "cli.input.invalid"
	CodeCLIUsageInvalid            Code = "cli.usage.invalid"
	CodeConfigLoadReadFailure      Code = "config.load.read.failure"
	CodeConfigValidateInvalidValue Code = "config.validate.invalid_value"
	CodeReportWriteFailure         Code = "report.write.failure"
	CodeReduceIterationLimit       Code = "reduce.iteration_limit"
	CodeReduceFailure              Code = "reduce.failure"
)

// Exit statuses returned by ExitCode.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Attr is a structured key/value attached to an error.
type Attr struct {
	Key   string
	Value any
}

// Field creates an Attr.
func Field(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

func New(code Code, msg string, fields ...Attr) error {
	return oops.Code(code).With(flatten(fields)...).New(msg)
}

func Errorf(code Code, format string, args ...any) error {
	return oops.Code(code).Errorf(format, args...)
}

func Wrapf(err error, code Code, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return oops.Code(code).Wrapf(err, format, args...)
}

// Wrap attaches code and fields to err; a nil err stays nil.
func Wrap(err error, code Code, msg string, fields ...Attr) error {
	if err == nil {
		return nil
	}

	return oops.Code(code).With(flatten(fields)...).Wrapf(err, "%s", msg)
}

// CodeOf returns the outermost Code in err's chain, or "" when err carries none.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}

	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}

	switch code := oopsErr.Code().(type) {
	case Code:
		return code
	case string:
		return Code(code)
	case nil:
		return ""
	default:
		return Code(fmt.Sprintf("%v", code))
	}
}

// FieldsOf returns the structured context attached to err.
func FieldsOf(err error) map[string]any {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return nil
	}

	return oopsErr.Context()
}

func HasCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// IsUsage reports whether err is a command-line usage mistake.
func IsUsage(err error) bool {
	return HasCode(err, CodeCLIUsageInvalid)
}

// IsInvalidInput reports whether err stems from bad user-supplied data.
func IsInvalidInput(err error) bool {
	r := reason(CodeOf(err))

	return r == "invalid" || r == "invalid_value"
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUsage(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// Join combines errs under code; nil entries are dropped and an all-nil
// input yields nil.
func Join(code Code, errs ...error) error {
	joined := errors.Join(errs...)
	if joined == nil {
		return nil
	}

	return oops.Code(code).Wrap(joined)
}

func flatten(fields []Attr) []any {
	pairs := make([]any, 0, len(fields)*2)
	for _, field := range fields {
		if field.Key == "" {
			continue
		}
		pairs = append(pairs, field.Key, field.Value)
	}

	return pairs
}

func reason(code Code) string {
	raw := string(code)
	idx := strings.LastIndex(raw, ".")
	if idx == -1 || idx == len(raw)-1 {
		return raw
	}

	return raw[idx+1:]
}
