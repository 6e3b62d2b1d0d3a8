package convert

import (
	"math/big"

	"github.com/ahauschulte/si-prefix-converter/siprefix"
	"github.com/calebcase/oops"
)

// bigFactors[i] is 10^(i+1). The table spans every magnitude a prefix
// pair can produce; arbitrary precision has no ceiling to enforce.
var bigFactors [60]*big.Int

func init() {
	ten := big.NewInt(10)
	for i := range bigFactors {
		bigFactors[i] = new(big.Int).Exp(ten, big.NewInt(int64(i+1)), nil)
	}
}

// factorBig returns 10^|delta| for a nonzero delta.
func factorBig(delta int) *big.Int {
	return bigFactors[abs(delta)-1]
}

// applyBig runs a resolved strategy over an arbitrary-precision value.
// The result is always freshly allocated; value and the factor table
// are never modified.
func applyBig(s strategy, value, factor *big.Int) *big.Int {
	switch s {
	case divideTruncate:
		// Quo truncates toward zero. Div would floor on negatives.
		return new(big.Int).Quo(value, factor)
	case multiplyChecked:
		return new(big.Int).Mul(value, factor)
	}

	return new(big.Int).Set(value)
}

// BigInt rescales value from the source prefix to the target prefix in
// exact integer arithmetic. Scaling down truncates toward zero; scaling
// up cannot overflow. The input is never modified and the result never
// aliases it.
func BigInt(source, target siprefix.Prefix, value *big.Int) (_ *big.Int, err error) {
	defer Error.WrapP(&err)

	if err := checkPrefixes(source, target); err != nil {
		return nil, err
	}
	if value == nil {
		return nil, oops.Trace(ErrNilValue)
	}

	delta := siprefix.Delta(source, target)
	s := strategyFor(delta)

	var factor *big.Int
	if s != identity {
		factor = factorBig(delta)
	}

	return applyBig(s, value, factor), nil
}
