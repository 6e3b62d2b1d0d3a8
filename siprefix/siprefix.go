// Package siprefix defines the named SI prefixes and their decimal
// exponents, from quecto (10^-30) through quetta (10^30).
package siprefix

import (
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("siprefix")

// Prefix is a named SI prefix. Its value is the signed decimal exponent
// of the scale it denotes: Kilo is 3 because kilo means 10^3. The zero
// value is Unit, the absence of a prefix.
type Prefix int8

const (
	Quecto Prefix = -30
	Ronto  Prefix = -27
	Yocto  Prefix = -24
	Zepto  Prefix = -21
	Atto   Prefix = -18
	Femto  Prefix = -15
	Pico   Prefix = -12
	Nano   Prefix = -9
	Micro  Prefix = -6
	Milli  Prefix = -3
	Centi  Prefix = -2
	Deci   Prefix = -1
	Unit   Prefix = 0
	Deca   Prefix = 1
	Hecto  Prefix = 2
	Kilo   Prefix = 3
	Mega   Prefix = 6
	Giga   Prefix = 9
	Tera   Prefix = 12
	Peta   Prefix = 15
	Exa    Prefix = 18
	Zetta  Prefix = 21
	Yotta  Prefix = 24
	Ronna  Prefix = 27
	Quetta Prefix = 30
)

// Prefixes lists every named prefix in ascending exponent order.
var Prefixes = []Prefix{
	Quecto, Ronto, Yocto, Zepto, Atto, Femto, Pico, Nano, Micro, Milli,
	Centi, Deci, Unit, Deca, Hecto, Kilo, Mega, Giga, Tera, Peta,
	Exa, Zetta, Yotta, Ronna, Quetta,
}

type entry struct {
	prefix Prefix
	name   string
	symbol string
}

type entries []entry

func (es entries) find(p Prefix) (e entry, ok bool) {
	for _, e := range es {
		if e.prefix == p {
			return e, true
		}
	}

	return e, false
}

var table = entries{
	{Quecto, "quecto", "q"},
	{Ronto, "ronto", "r"},
	{Yocto, "yocto", "y"},
	{Zepto, "zepto", "z"},
	{Atto, "atto", "a"},
	{Femto, "femto", "f"},
	{Pico, "pico", "p"},
	{Nano, "nano", "n"},
	{Micro, "micro", "µ"},
	{Milli, "milli", "m"},
	{Centi, "centi", "c"},
	{Deci, "deci", "d"},
	{Unit, "unit", ""},
	{Deca, "deca", "da"},
	{Hecto, "hecto", "h"},
	{Kilo, "kilo", "k"},
	{Mega, "mega", "M"},
	{Giga, "giga", "G"},
	{Tera, "tera", "T"},
	{Peta, "peta", "P"},
	{Exa, "exa", "E"},
	{Zetta, "zetta", "Z"},
	{Yotta, "yotta", "Y"},
	{Ronna, "ronna", "R"},
	{Quetta, "quetta", "Q"},
}

// Exponent returns the signed power of ten the prefix denotes.
func (p Prefix) Exponent() int {
	return int(p)
}

// IsValid returns true if p is one of the named prefixes.
func (p Prefix) IsValid() bool {
	_, ok := table.find(p)
	return ok
}

// String returns the lower-case prefix name. Unnamed values render in
// the Prefix(n) form.
func (p Prefix) String() string {
	e, ok := table.find(p)
	if !ok {
		return "Prefix(" + strconv.Itoa(int(p)) + ")"
	}

	return e.name
}

// Symbol returns the BIPM symbol for the prefix. Unit has no symbol and
// returns the empty string, as do unnamed values.
func (p Prefix) Symbol() string {
	e, ok := table.find(p)
	if !ok {
		return ""
	}

	return e.symbol
}

// Parse returns the prefix for a symbol or a name. Symbols match
// case-sensitively since case distinguishes them (milli m, mega M); a
// plain u is accepted for micro. Names match case-insensitively. The
// empty string is Unit's symbol and parses to Unit.
func Parse(s string) (Prefix, error) {
	for _, e := range table {
		if e.symbol == s {
			return e.prefix, nil
		}
	}

	if s == "u" {
		return Micro, nil
	}

	lower := strings.ToLower(s)
	for _, e := range table {
		if e.name == lower {
			return e.prefix, nil
		}
	}

	return 0, Error.New("unknown si prefix %q", s)
}

// FromExponent returns the prefix denoting 10^exp.
func FromExponent(exp int) (Prefix, bool) {
	if exp < int(Quecto) || exp > int(Quetta) {
		return 0, false
	}

	p := Prefix(exp)
	if !p.IsValid() {
		return 0, false
	}

	return p, true
}

// Delta returns source's exponent minus target's. The sign gives the
// scale direction: positive deltas scale up, negative deltas scale
// down.
func Delta(source, target Prefix) int {
	return int(source) - int(target)
}
