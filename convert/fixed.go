package convert

import (
	"math/big"

	"github.com/ahauschulte/si-prefix-converter/siprefix"
	"github.com/calebcase/oops"
)

// Value is the set of numeric representations a converter can carry.
type Value interface {
	int32 | int64 | float64 | *big.Int
}

type convertFunc[T Value] func(source, target siprefix.Prefix, value T) (T, error)

// oneShot returns the eager conversion function for T.
func oneShot[T Value]() convertFunc[T] {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(convertFunc[float64](Float64)).(convertFunc[T])
	case int32:
		return any(convertFunc[int32](Int32)).(convertFunc[T])
	case int64:
		return any(convertFunc[int64](Int64)).(convertFunc[T])
	default: // *big.Int
		return any(convertFunc[*big.Int](BigInt)).(convertFunc[T])
	}
}

// resolveApply binds an exponent delta's factor and strategy into a
// single-argument application function for T. The bounded widths fail
// here when the factor is beyond their ceiling.
func resolveApply[T Value](delta int) (func(T) (T, error), error) {
	var zero T
	switch any(zero).(type) {
	case float64:
		factor := floatFactor(delta)
		fn := func(v float64) (float64, error) {
			return factor * v, nil
		}

		return any(fn).(func(T) (T, error)), nil
	case int32:
		fn, err := resolveBounded[int32](delta, factor32)
		if err != nil {
			return nil, err
		}

		return any(fn).(func(T) (T, error)), nil
	case int64:
		fn, err := resolveBounded[int64](delta, factor64)
		if err != nil {
			return nil, err
		}

		return any(fn).(func(T) (T, error)), nil
	default: // *big.Int
		s := strategyFor(delta)

		var factor *big.Int
		if s != identity {
			factor = factorBig(delta)
		}

		fn := func(v *big.Int) (*big.Int, error) {
			if v == nil {
				return nil, oops.Trace(ErrNilValue)
			}

			return applyBig(s, v, factor), nil
		}

		return any(fn).(func(T) (T, error)), nil
	}
}

// resolveBounded resolves strategy and factor for a bounded width using
// its factor lookup.
func resolveBounded[T integer](delta int, factor func(int) (T, error)) (func(T) (T, error), error) {
	s := strategyFor(delta)

	var f T
	if s != identity {
		var err error

		f, err = factor(delta)
		if err != nil {
			return nil, err
		}
	}

	return func(v T) (T, error) {
		return applyBounded(s, v, f)
	}, nil
}

// Fixed converts between a source and a target prefix bound at
// construction. The exponent delta, scale factor, and application
// strategy are resolved once up front; Convert only applies the
// strategy. Values are immutable, cheap to copy, and safe for
// concurrent use.
type Fixed[T Value] struct {
	source siprefix.Prefix
	target siprefix.Prefix
	apply  func(T) (T, error)
}

// NewFixed resolves a converter from source to target. It fails
// immediately on an invalid prefix and, for the bounded widths, on a
// scale factor beyond the width's ceiling; overflow stays per call
// since it depends on the value.
func NewFixed[T Value](source, target siprefix.Prefix) (_ Fixed[T], err error) {
	defer Error.WrapP(&err)

	if err := checkPrefixes(source, target); err != nil {
		return Fixed[T]{}, err
	}

	apply, err := resolveApply[T](siprefix.Delta(source, target))
	if err != nil {
		return Fixed[T]{}, err
	}

	return Fixed[T]{
		source: source,
		target: target,
		apply:  apply,
	}, nil
}

// Source returns the prefix values are converted from.
func (c Fixed[T]) Source() siprefix.Prefix {
	return c.source
}

// Target returns the prefix values are converted to.
func (c Fixed[T]) Target() siprefix.Prefix {
	return c.target
}

// Convert rescales value from the fixed source prefix to the fixed
// target prefix under T's arithmetic contract.
func (c Fixed[T]) Convert(value T) (_ T, err error) {
	defer Error.WrapP(&err)

	return c.apply(value)
}

// FixedSource converts from a source prefix bound at construction; the
// target prefix is supplied per call and resolution happens per call.
type FixedSource[T Value] struct {
	source  siprefix.Prefix
	convert convertFunc[T]
}

// NewFixedSource returns a converter with the source prefix bound. It
// fails immediately if source is invalid.
func NewFixedSource[T Value](source siprefix.Prefix) (_ FixedSource[T], err error) {
	defer Error.WrapP(&err)

	if !source.IsValid() {
		return FixedSource[T]{}, ErrPrefix.New("source prefix %v", source)
	}

	return FixedSource[T]{
		source:  source,
		convert: oneShot[T](),
	}, nil
}

// Source returns the prefix values are converted from.
func (c FixedSource[T]) Source() siprefix.Prefix {
	return c.source
}

// Convert rescales value from the fixed source prefix to target.
func (c FixedSource[T]) Convert(target siprefix.Prefix, value T) (T, error) {
	return c.convert(c.source, target, value)
}

// FixedTarget converts to a target prefix bound at construction; the
// source prefix is supplied per call and resolution happens per call.
type FixedTarget[T Value] struct {
	target  siprefix.Prefix
	convert convertFunc[T]
}

// NewFixedTarget returns a converter with the target prefix bound. It
// fails immediately if target is invalid.
func NewFixedTarget[T Value](target siprefix.Prefix) (_ FixedTarget[T], err error) {
	defer Error.WrapP(&err)

	if !target.IsValid() {
		return FixedTarget[T]{}, ErrPrefix.New("target prefix %v", target)
	}

	return FixedTarget[T]{
		target:  target,
		convert: oneShot[T](),
	}, nil
}

// Target returns the prefix values are converted to.
func (c FixedTarget[T]) Target() siprefix.Prefix {
	return c.target
}

// Convert rescales value from source to the fixed target prefix.
func (c FixedTarget[T]) Convert(source siprefix.Prefix, value T) (T, error) {
	return c.convert(source, c.target, value)
}
