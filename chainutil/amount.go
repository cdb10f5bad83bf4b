// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AmountUnit describes a method of converting an Amount to something other
// than the base unit (Drop) of HVN.
type AmountUnit int

const (
	AmountMegaHVN  AmountUnit = 6
	AmountKiloHVN  AmountUnit = 3
	AmountHVN      AmountUnit = 0
	AmountMilliHVN AmountUnit = -3
	AmountMicroHVN AmountUnit = -6
	AmountDrop     AmountUnit = -8
)

// String returns the unit as a string. For recognized units, the SI prefix
// is used, or "Drop" for the base unit.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaHVN:
		return "MHVN"
	case AmountKiloHVN:
		return "kHVN"
	case AmountHVN:
		return "HVN"
	case AmountMilliHVN:
		return "mHVN"
	case AmountMicroHVN:
		return "µHVN"
	case AmountDrop:
		return "Drop"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " HVN"
	}
}

// Amount represents a quantity of the base monetary unit (a "Drop"). A
// single Amount is 1e-8 HVN, matching spec.md §4.7's COIN = 10^8.
type Amount int64

func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value denominated in
// whole HVN.
func NewAmount(f float64) (Amount, error) {
	switch {
	case math.IsNaN(f), math.IsInf(f, 1), math.IsInf(f, -1):
		return 0, errors.New("invalid amount")
	}
	return round(f * COIN), nil
}

// ToUnit converts an Amount to a floating point value in the given unit.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToHVN is equivalent to calling ToUnit with AmountHVN.
func (a Amount) ToHVN() float64 {
	return a.ToUnit(AmountHVN)
}

// Format formats an Amount as a string for the given unit.
func (a Amount) Format(u AmountUnit) string {
	units := " " + u.String()
	formatted := strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64)
	if u == AmountHVN && strings.Contains(formatted, ".") {
		return fmt.Sprintf("%.8f%s", a.ToUnit(u), units)
	}
	return formatted + units
}

// String is equivalent to calling Format with AmountHVN.
func (a Amount) String() string {
	return a.Format(AmountHVN)
}

// MulF64 multiplies an Amount by a floating point factor.
func (a Amount) MulF64(f float64) Amount {
	return round(float64(a) * f)
}
