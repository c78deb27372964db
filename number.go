// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

package oasdoc

import (
	"encoding/json"
	"math/big"
	"strings"
)

// Number is a numeric keyword value kept in its original JSON spelling, so
// an integer literal stays an integer and a float literal stays a float.
type Number struct {
	literal json.Number
}

// NewNumber wraps one JSON numeric literal.
func NewNumber(literal string) Number {
	return Number{literal: json.Number(literal)}
}

// String returns the literal exactly as written in the document.
func (n Number) String() string {
	return n.literal.String()
}

// IsInteger reports whether the literal has no fraction or exponent part.
func (n Number) IsInteger() bool {
	text := n.literal.String()
	return text != "" && !strings.ContainsAny(text, ".eE")
}

// IsIntegral reports whether the value has no fractional part, so "10" and
// "10.0" both qualify while "10.5" does not.
func (n Number) IsIntegral() bool {
	value, ok := new(big.Rat).SetString(n.literal.String())
	return ok && value.IsInt()
}

// Sign returns -1, 0 or +1 depending on the sign of the value, and 0 for
// literals that do not parse.
func (n Number) Sign() int {
	value, ok := new(big.Rat).SetString(n.literal.String())
	if !ok {
		return 0
	}

	return value.Sign()
}

// Float64 returns the value converted to float64.
func (n Number) Float64() float64 {
	value, err := n.literal.Float64()
	if err != nil {
		return 0
	}

	return value
}

// JSON returns the literal as json.Number for encoders.
func (n Number) JSON() json.Number {
	return n.literal
}
