package convert

import (
	"github.com/ahauschulte/si-prefix-converter/siprefix"
)

// integer covers the bounded widths, which share truncating division
// and overflow-checked multiplication.
type integer interface {
	int32 | int64
}

// Factor tables for the bounded widths, ascending powers of ten up to
// each width's ceiling. The factor for a delta of magnitude m sits at
// index m-1.
var (
	factors32 = [...]int32{
		10,            // 10^1
		100,           // 10^2
		1_000,         // 10^3
		10_000,        // 10^4
		100_000,       // 10^5
		1_000_000,     // 10^6
		10_000_000,    // 10^7
		100_000_000,   // 10^8
		1_000_000_000, // 10^9
	}

	factors64 = [...]int64{
		10,                        // 10^1
		100,                       // 10^2
		1_000,                     // 10^3
		10_000,                    // 10^4
		100_000,                   // 10^5
		1_000_000,                 // 10^6
		10_000_000,                // 10^7
		100_000_000,               // 10^8
		1_000_000_000,             // 10^9
		10_000_000_000,            // 10^10
		100_000_000_000,           // 10^11
		1_000_000_000_000,         // 10^12
		10_000_000_000_000,        // 10^13
		100_000_000_000_000,       // 10^14
		1_000_000_000_000_000,     // 10^15
		10_000_000_000_000_000,    // 10^16
		100_000_000_000_000_000,   // 10^17
		1_000_000_000_000_000_000, // 10^18
	}
)

func factor32(delta int) (int32, error) {
	i := abs(delta) - 1
	if i >= len(factors32) {
		return 0, ErrRange.New("int32 holds at most 10^%d, conversion needs 10^%d", len(factors32), abs(delta))
	}

	return factors32[i], nil
}

func factor64(delta int) (int64, error) {
	i := abs(delta) - 1
	if i >= len(factors64) {
		return 0, ErrRange.New("int64 holds at most 10^%d, conversion needs 10^%d", len(factors64), abs(delta))
	}

	return factors64[i], nil
}

// applyBounded runs a resolved strategy over a bounded-width value. The
// factor is not consulted for identity and may be zero there.
func applyBounded[T integer](s strategy, value, factor T) (T, error) {
	switch s {
	case divideTruncate:
		return value / factor, nil
	case multiplyChecked:
		return mulChecked(value, factor)
	}

	return value, nil
}

// mulChecked multiplies value by factor, reporting overflow instead of
// wrapping. factor is always a positive power of ten here.
func mulChecked[T integer](value, factor T) (T, error) {
	product := value * factor
	if value != 0 && product/value != factor {
		return 0, ErrOverflow.New("%d * %d does not fit in %T", value, factor, product)
	}

	return product, nil
}

// Int32 rescales value from the source prefix to the target prefix in
// 32-bit integer arithmetic. Scaling down truncates toward zero.
// Scaling up fails with ErrRange when the factor exceeds 10^9 and with
// ErrOverflow when the product leaves the int32 range.
func Int32(source, target siprefix.Prefix, value int32) (_ int32, err error) {
	defer Error.WrapP(&err)

	if err := checkPrefixes(source, target); err != nil {
		return 0, err
	}

	delta := siprefix.Delta(source, target)
	s := strategyFor(delta)
	if s == identity {
		return value, nil
	}

	factor, err := factor32(delta)
	if err != nil {
		return 0, err
	}

	return applyBounded(s, value, factor)
}

// Int64 rescales value from the source prefix to the target prefix in
// 64-bit integer arithmetic. Scaling down truncates toward zero.
// Scaling up fails with ErrRange when the factor exceeds 10^18 and with
// ErrOverflow when the product leaves the int64 range.
func Int64(source, target siprefix.Prefix, value int64) (_ int64, err error) {
	defer Error.WrapP(&err)

	if err := checkPrefixes(source, target); err != nil {
		return 0, err
	}

	delta := siprefix.Delta(source, target)
	s := strategyFor(delta)
	if s == identity {
		return value, nil
	}

	factor, err := factor64(delta)
	if err != nil {
		return 0, err
	}

	return applyBounded(s, value, factor)
}
