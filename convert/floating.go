package convert

import (
	"github.com/ahauschulte/si-prefix-converter/siprefix"
)

// floatFactors holds 10^-60 through 10^60, indexed at delta +
// floatOffset. Dense, so every prefix pair resolves with one lookup and
// no exponentiation.
var floatFactors = [...]float64{
	1e-60, 1e-59, 1e-58, 1e-57, 1e-56, 1e-55, 1e-54, 1e-53, 1e-52, 1e-51,
	1e-50, 1e-49, 1e-48, 1e-47, 1e-46, 1e-45, 1e-44, 1e-43, 1e-42, 1e-41,
	1e-40, 1e-39, 1e-38, 1e-37, 1e-36, 1e-35, 1e-34, 1e-33, 1e-32, 1e-31,
	1e-30, 1e-29, 1e-28, 1e-27, 1e-26, 1e-25, 1e-24, 1e-23, 1e-22, 1e-21,
	1e-20, 1e-19, 1e-18, 1e-17, 1e-16, 1e-15, 1e-14, 1e-13, 1e-12, 1e-11,
	1e-10, 1e-9, 1e-8, 1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1,
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22, 1e23, 1e24, 1e25, 1e26, 1e27, 1e28, 1e29,
	1e30, 1e31, 1e32, 1e33, 1e34, 1e35, 1e36, 1e37, 1e38, 1e39,
	1e40, 1e41, 1e42, 1e43, 1e44, 1e45, 1e46, 1e47, 1e48, 1e49,
	1e50, 1e51, 1e52, 1e53, 1e54, 1e55, 1e56, 1e57, 1e58, 1e59,
	1e60,
}

const floatOffset = len(floatFactors) / 2

// floatFactor returns 10^delta.
func floatFactor(delta int) float64 {
	return floatFactors[delta+floatOffset]
}

// Float64 rescales value from the source prefix to the target prefix in
// 64-bit floating point. The conversion is a single multiply: results
// beyond the range saturate to ±Inf, results below it underflow to
// zero, and NaN passes through. The only possible error is an invalid
// prefix.
func Float64(source, target siprefix.Prefix, value float64) (_ float64, err error) {
	defer Error.WrapP(&err)

	if err := checkPrefixes(source, target); err != nil {
		return 0, err
	}

	return floatFactor(siprefix.Delta(source, target)) * value, nil
}
