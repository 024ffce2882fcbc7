// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fidlir

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// BigInt parses the literal as an arbitrary-precision integer. Decimal, "0x"
// hexadecimal and "0b" binary tokens are accepted, with an optional sign and
// "_" digit separators.
func (l *NumericLiteral) BigInt() (*big.Int, error) {
	neg, digits, base := splitNumericToken(l.Value)
	n, ok := new(big.Int).SetString(digits, base)
	if !ok || digits == "" {
		return nil, fmt.Errorf("%q is not an integer literal", l.Value)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}

// Uint64 parses the literal as an unsigned 64-bit integer.
func (l *NumericLiteral) Uint64() (uint64, error) {
	neg, digits, base := splitNumericToken(l.Value)
	if neg {
		return 0, fmt.Errorf("%q is negative", l.Value)
	}
	return strconv.ParseUint(digits, base, 64)
}

// Int64 parses the literal as a signed 64-bit integer.
func (l *NumericLiteral) Int64() (int64, error) {
	n, err := l.BigInt()
	if err != nil {
		return 0, err
	}
	if !n.IsInt64() {
		return 0, fmt.Errorf("%q overflows int64", l.Value)
	}
	return n.Int64(), nil
}

// Float64 parses the literal as a floating-point number.
func (l *NumericLiteral) Float64() (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(l.Value, "_", ""), 64)
}

// splitNumericToken splits a literal token into its sign, digits and base.
func splitNumericToken(text string) (neg bool, digits string, base int) {
	digits = strings.ReplaceAll(text, "_", "")
	switch {
	case strings.HasPrefix(digits, "-"):
		neg, digits = true, digits[1:]
	case strings.HasPrefix(digits, "+"):
		digits = digits[1:]
	}
	lower := strings.ToLower(digits)
	switch {
	case strings.HasPrefix(lower, "0x"):
		return neg, digits[2:], 16
	case strings.HasPrefix(lower, "0b"):
		return neg, digits[2:], 2
	}
	return neg, digits, 10
}
