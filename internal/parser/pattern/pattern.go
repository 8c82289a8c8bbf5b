// Package pattern is a library of small, composable regular-expression
// fragments for the CHEMKIN reaction grammar. The grammar is positional and
// line-oriented rather than context-free, so each token class (species name,
// number, reaction arrow, slash-delimited keyword block) is expressed as a
// named fragment; extractors compose fragments into full patterns and compile
// them once into package-level *regexp.Regexp values.
//
// Every combinator returns a plain string containing only non-capturing
// groups, so composed patterns have predictable submatch indices: the only
// capture groups are the ones a caller adds explicitly via Capturing.
package pattern

import "regexp"

// ─────────────────────────────────────────────────────────────────────────────
// Primitive character classes
// ─────────────────────────────────────────────────────────────────────────────

const (
	// Digit matches a single decimal digit.
	Digit = `[0-9]`

	// Letter matches a single ASCII letter.
	Letter = `[A-Za-z]`

	// Plus matches a literal plus sign.
	Plus = `\+`

	// Underscore matches a literal underscore.
	Underscore = `_`

	// LineSpace matches a space or tab, never a newline.
	LineSpace = `[ \t]`

	// NonSpace matches any non-whitespace character.
	NonSpace = `\S`

	// Space matches any whitespace character, including newlines.
	Space = `\s`
)

// ─────────────────────────────────────────────────────────────────────────────
// Numeric token classes
// ─────────────────────────────────────────────────────────────────────────────

const (
	// Integer matches a signed integer with no decimal point.
	Integer = `[+-]?` + Digit + `+`

	// Float matches a signed decimal number that carries a decimal point.
	Float = `[+-]?(?:` + Digit + `+\.` + Digit + `*|\.` + Digit + `+)`

	// exponent is a Fortran-style exponent suffix. CHEMKIN files written by
	// Fortran codes use D as well as E.
	exponent = `[EeDd][+-]?` + Digit + `+`

	// ExponentialFloat matches a number that carries an explicit exponent,
	// e.g. "1.0216E+01" or "4.0D-2".
	ExponentialFloat = `[+-]?(?:` + Digit + `+\.?` + Digit + `*|\.` + Digit + `+)` + exponent

	// Number matches any of the numeric forms above: integer, float, or
	// exponential float.
	Number = `[+-]?(?:` + Digit + `+\.?` + Digit + `*|\.` + Digit + `+)(?:` + exponent + `)?`
)

// ─────────────────────────────────────────────────────────────────────────────
// Combinators
// ─────────────────────────────────────────────────────────────────────────────

// Escape returns a fragment matching s literally.
func Escape(s string) string {
	return regexp.QuoteMeta(s)
}

// Group wraps p in a non-capturing group.
func Group(p string) string {
	return `(?:` + p + `)`
}

// Capturing wraps p in a capturing group. This is the only combinator that
// introduces a capture group.
func Capturing(p string) string {
	return `(` + p + `)`
}

// Maybe matches p zero or one time.
func Maybe(p string) string {
	return Group(p) + `?`
}

// ZeroOrMore matches p any number of times, including zero.
func ZeroOrMore(p string) string {
	return Group(p) + `*`
}

// OneOrMore matches p one or more times.
func OneOrMore(p string) string {
	return Group(p) + `+`
}

// OneOf matches any single one of the given alternatives, tried left to right.
func OneOf(alternatives ...string) string {
	out := `(?:`
	for i, a := range alternatives {
		if i > 0 {
			out += `|`
		}
		out += a
	}
	return out + `)`
}

// Series matches one or more occurrences of item joined by sep.
func Series(item, sep string) string {
	return Group(item) + ZeroOrMore(Group(sep)+Group(item))
}

// Padded allows optional line-internal spacing on both sides of p.
func Padded(p string) string {
	return ZeroOrMore(LineSpace) + Group(p) + ZeroOrMore(LineSpace)
}

// LineSpaces matches one or more spaces or tabs.
func LineSpaces() string {
	return OneOrMore(LineSpace)
}

// ─────────────────────────────────────────────────────────────────────────────
// CHEMKIN token classes
// ─────────────────────────────────────────────────────────────────────────────

// Arrow matches a reaction arrow: "=", "<=>", or "=>".
const Arrow = `<?=>?`

// PlusM and ParenPlusM are the third-body decorations stripped from reagent
// strings before species splitting.
const (
	PlusM      = Plus + `M`
	ParenPlusM = `\(` + Plus + `M\)`
)

// SpeciesName matches one CHEMKIN species token. The first character may be
// anything except whitespace, "=", "+", or "-"; the remainder admits letters,
// digits, the "(+)" charge decoration, brackets, and "#,()-"; trailing plus
// signs (ionic charges) belong to the name.
const SpeciesName = `[^\s=+\-]` +
	`(?:` + Letter + `|` + Digit + `|\(\+\)|[#,()\-]|\[|\])*` +
	Plus + `*`

// SpeciesNames matches a reagent list: species joined by padded plus signs.
var SpeciesNames = Series(Padded(SpeciesName), Padded(Plus))

// Coefficients matches the three whitespace-separated numbers of an
// Arrhenius coefficient group.
var Coefficients = Number + LineSpaces() + Number + LineSpaces() + Number

// SlashBlock builds the pattern of a keyword-tagged auxiliary block:
// the keyword, a slash, the given field patterns separated by whitespace,
// and a closing slash. Interior spacing is arbitrary per the CHEMKIN
// convention; the field arity is exact, so a block with too few or too many
// values does not match.
func SlashBlock(keyword string, fields ...string) string {
	p := keyword + ZeroOrMore(LineSpace) + `/` + ZeroOrMore(Space)
	for i, f := range fields {
		if i > 0 {
			p += OneOrMore(Space)
		}
		p += f
	}
	return p + ZeroOrMore(Space) + `/`
}

// FirstLine builds the composed pattern of a reaction entry's first physical
// line: reagents, arrow, reagents, then the coefficient group on the same
// line. Callers choose which part captures by passing Capturing-wrapped
// fragments.
func FirstLine(reactants, products, coefficients string) string {
	return reactants + Padded(Arrow) + products + LineSpaces() + coefficients
}
