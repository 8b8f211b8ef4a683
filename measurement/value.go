// Package measurement provides a value-with-uncertainty numeric type and
// aligned sequences of such values, with standard linearized error
// propagation through arithmetic.
package measurement

import (
	"fmt"
	"math"
)

// Value is a nominal measurement plus a standard deviation. Values are
// immutable; arithmetic returns new Values with the uncertainty propagated
// under the usual linearized rules (independent inputs assumed).
type Value struct {
	Nominal float64
	SD      float64
}

// New creates a Value with the given nominal value and standard deviation.
// The sign of sd is ignored.
func New(nominal, sd float64) Value {
	return Value{Nominal: nominal, SD: math.Abs(sd)}
}

// Exact creates a Value with zero uncertainty.
func Exact(nominal float64) Value {
	return Value{Nominal: nominal}
}

// Add returns v + o. Variances add.
func (v Value) Add(o Value) Value {
	return Value{
		Nominal: v.Nominal + o.Nominal,
		SD:      math.Hypot(v.SD, o.SD),
	}
}

// Sub returns v - o. Variances add, same as for a sum.
func (v Value) Sub(o Value) Value {
	return Value{
		Nominal: v.Nominal - o.Nominal,
		SD:      math.Hypot(v.SD, o.SD),
	}
}

// Mul returns v * o with sigma^2 = (o.Nominal*v.SD)^2 + (v.Nominal*o.SD)^2.
// This form stays finite when either nominal value is zero.
func (v Value) Mul(o Value) Value {
	return Value{
		Nominal: v.Nominal * o.Nominal,
		SD:      math.Hypot(o.Nominal*v.SD, v.Nominal*o.SD),
	}
}

// Div returns v / o under the same linearized rule as Mul.
func (v Value) Div(o Value) Value {
	n := v.Nominal / o.Nominal
	return Value{
		Nominal: n,
		SD:      math.Hypot(v.SD/o.Nominal, v.Nominal*o.SD/(o.Nominal*o.Nominal)),
	}
}

// Scale returns v multiplied by an exact constant.
func (v Value) Scale(k float64) Value {
	return Value{Nominal: k * v.Nominal, SD: math.Abs(k) * v.SD}
}

// AddExact returns v shifted by an exact constant.
func (v Value) AddExact(k float64) Value {
	return Value{Nominal: v.Nominal + k, SD: v.SD}
}

// Exp10 returns 10^v. The derivative of 10^x is 10^x * ln(10), so
// sigma_y = y * ln(10) * sigma_x.
func (v Value) Exp10() Value {
	y := math.Pow(10, v.Nominal)
	return Value{Nominal: y, SD: y * math.Ln10 * v.SD}
}

// Pow returns v^k for an exact exponent k, with
// sigma_y = |k * v^(k-1)| * sigma_x.
func (v Value) Pow(k float64) Value {
	y := math.Pow(v.Nominal, k)
	return Value{Nominal: y, SD: math.Abs(k*math.Pow(v.Nominal, k-1)) * v.SD}
}

func (v Value) String() string {
	return fmt.Sprintf("%g ± %g", v.Nominal, v.SD)
}
