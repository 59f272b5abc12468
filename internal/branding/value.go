// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package branding

import "strconv"

// Kind is the type a key resolves to.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Value is a resolved branding value. Only the accessor matching Kind carries
// meaning; String formats any kind.
type Value struct {
	kind Kind
	str  string
	num  float64
	flag bool
}

func stringValue(s string) Value  { return Value{kind: KindString, str: s} }
func numberValue(n float64) Value { return Value{kind: KindNumber, num: n} }
func boolValue(b bool) Value      { return Value{kind: KindBool, flag: b} }

// Kind returns the value's type.
func (v Value) Kind() Kind {
	return v.kind
}

// Number returns the numeric value, zero for non-numeric kinds.
func (v Value) Number() float64 {
	return v.num
}

// Bool returns the flag value, false for non-boolean kinds.
func (v Value) Bool() bool {
	return v.flag
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return v.str
	}
}
