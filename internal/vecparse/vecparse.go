// SPDX-License-Identifier: MIT

// Package vecparse turns command-line vector literals such as
//
//	latred [1 0] [1 2]
//	latred "[1, 0] [1, 2]"
//
// into basis rows. Arguments are joined with single spaces first, so a
// vector may span several shell words. Components are separated by blanks
// or commas. Every vector must carry exactly as many components as there
// are vectors.
package vecparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNoVectors is returned when the input holds no vector at all.
	ErrNoVectors = errors.New("vecparse: no vectors given")

	// ErrInvalidFormat covers every malformed literal.
	ErrInvalidFormat = errors.New("vecparse: invalid vector format")
)

// Parse reads the vectors in args. The result is square: len(rows) vectors
// of len(rows) components each.
func Parse(args []string) ([][]float64, error) {
	rows, err := Scan(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != len(rows) {
			return nil, fmt.Errorf("vector %d has %d components, want %d: %w", i, len(r), len(rows), ErrInvalidFormat)
		}
	}

	return rows, nil
}

// Scan reads bracketed vectors from s without checking their lengths.
func Scan(s string) ([][]float64, error) {
	var rows [][]float64
	rest := s
	for {
		rest = strings.TrimLeft(rest, " \t\r\n,")
		if rest == "" {
			break
		}
		if rest[0] != '[' {
			return nil, fmt.Errorf("unexpected %q outside brackets: %w", head(rest), ErrInvalidFormat)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("unterminated vector %q: %w", head(rest), ErrInvalidFormat)
		}
		body := rest[1:end]
		if strings.ContainsRune(body, '[') {
			return nil, fmt.Errorf("nested bracket in %q: %w", rest[:end+1], ErrInvalidFormat)
		}
		row, err := components(body)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		rest = rest[end+1:]
	}
	if len(rows) == 0 {
		return nil, ErrNoVectors
	}

	return rows, nil
}

func components(body string) ([]float64, error) {
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	row := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("component %q: %w", f, ErrInvalidFormat)
		}
		row = append(row, x)
	}

	return row, nil
}

// head trims s for error messages.
func head(s string) string {
	const limit = 16
	if len(s) <= limit {
		return s
	}

	return s[:limit] + "..."
}
