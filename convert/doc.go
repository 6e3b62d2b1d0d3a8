// Package convert rescales numeric values between SI prefixes.
//
// A conversion from a source prefix to a target prefix scales the value
// by 10^delta, where delta is the source exponent minus the target
// exponent. The sign of the delta alone picks how the scale factor is
// applied:
//
//	delta < 0   divide by 10^|delta|, truncating toward zero
//	delta = 0   value passes through unchanged
//	delta > 0   multiply by 10^delta, rejecting overflow
//
// Truncation toward zero is the only rounding policy. Factors are read
// from precomputed tables; nothing is exponentiated at call time and
// the tables are never written after package initialization, so every
// function here is safe for unbounded concurrent use.
//
// Representations
//
// One conversion function exists per numeric representation, each with
// its own arithmetic contract:
//
//	Float64   dense factor table covering the whole delta range; a
//	          single multiply with IEEE 754 semantics (saturates to
//	          ±Inf, underflows to zero, NaN propagates); never fails
//	          arithmetically.
//	Int32     factors up to 10^9; larger factors fail with ErrRange,
//	          products outside int32 fail with ErrOverflow.
//	Int64     factors up to 10^18; larger factors fail with ErrRange,
//	          products outside int64 fail with ErrOverflow.
//	BigInt    exact arithmetic, factors up to 10^60 (the full prefix
//	          span); never fails arithmetically.
//
// Fixed Converters
//
// The one-shot functions resolve delta, factor, and strategy on every
// call. For hot loops, NewFixed binds both prefixes and resolves
// everything once so each Convert only applies the strategy:
//
//	c, err := convert.NewFixed[int64](siprefix.Kilo, siprefix.Unit)
//	if err != nil {
//		...
//	}
//	grams, err := c.Convert(kilograms)
//
// NewFixedSource and NewFixedTarget bind a single prefix and take the
// other per call. Converters are immutable values; copying and sharing
// them across goroutines is fine.
package convert
