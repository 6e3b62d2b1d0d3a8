package convert

import (
	"github.com/ahauschulte/si-prefix-converter/siprefix"
	"github.com/zeebo/errs"
)

var (
	// Error is the class of all errors returned by this package.
	Error = errs.Class("convert")

	// ErrPrefix reports a source or target prefix that is not one of
	// the named SI prefixes.
	ErrPrefix = errs.Class("invalid si prefix")

	// ErrRange reports a conversion whose scale factor exceeds what the
	// integer width can hold.
	ErrRange = errs.Class("conversion factor out of range")

	// ErrOverflow reports an upscale product outside the integer
	// width's representable range.
	ErrOverflow = errs.Class("conversion overflow")

	// ErrNilValue is returned for a nil *big.Int value.
	ErrNilValue = Error.New("value must not be nil")
)

func checkPrefixes(source, target siprefix.Prefix) error {
	if !source.IsValid() {
		return ErrPrefix.New("source prefix %v", source)
	}
	if !target.IsValid() {
		return ErrPrefix.New("target prefix %v", target)
	}

	return nil
}
