// Package reaction extracts structured kinetic-rate data from one CHEMKIN
// reaction block: per-entry species lists and every rate-law parameterization
// (high-pressure Arrhenius, LOW, TROE, Chebyshev, PLOG, bath-gas efficiency
// factors). All functions are pure scans over immutable input text; the only
// shared state is the compiled pattern set below, which is read-only after
// package initialization and safe for concurrent use.
package reaction

import (
	"regexp"

	"github.com/turtacn/MechParse/internal/parser/pattern"
)

// Compiled patterns. Each extractor owns the patterns it needs; they are
// composed from the fragment library so the token classes stay in one place.
var (
	// reArrow recognizes a reaction arrow anywhere in a line. The segmenter
	// trusts that arrows occur only in true equation lines.
	reArrow = regexp.MustCompile(pattern.Arrow)

	// First-physical-line patterns: reagents, arrow, reagents, coefficient
	// triple on the same line. The same composed shape is compiled three
	// times with a different part capturing, plus once without captures for
	// line classification.
	reFirstLineReactants = regexp.MustCompile(pattern.FirstLine(
		pattern.Capturing(pattern.SpeciesNames), pattern.SpeciesNames, pattern.Coefficients))
	reFirstLineProducts = regexp.MustCompile(pattern.FirstLine(
		pattern.SpeciesNames, pattern.Capturing(pattern.SpeciesNames), pattern.Coefficients))
	reFirstLineCoeffs = regexp.MustCompile(pattern.FirstLine(
		pattern.SpeciesNames, pattern.SpeciesNames, pattern.Capturing(pattern.Coefficients)))
	reFirstLinePlain = regexp.MustCompile(pattern.FirstLine(
		pattern.SpeciesNames, pattern.SpeciesNames, pattern.Coefficients))

	// Third-body decorations stripped from captured reagent strings.
	reParenPlusM = regexp.MustCompile(pattern.ParenPlusM)
	rePlusM      = regexp.MustCompile(pattern.PlusM)
	reLineSpace  = regexp.MustCompile(pattern.LineSpace)

	// LOW / n n n /
	reLow = regexp.MustCompile(pattern.SlashBlock("LOW",
		pattern.Capturing(pattern.Number),
		pattern.Capturing(pattern.Number),
		pattern.Capturing(pattern.Number)))

	// TROE / a T*** T* T** / tried before TROE / a T*** T* /. The
	// four-parameter pattern is strictly more specific and must not be
	// shadowed by a partial three-parameter match.
	reTroe4 = regexp.MustCompile(pattern.SlashBlock("TROE",
		pattern.Capturing(pattern.Number),
		pattern.Capturing(pattern.Number),
		pattern.Capturing(pattern.Number),
		pattern.Capturing(pattern.Number)))
	reTroe3 = regexp.MustCompile(pattern.SlashBlock("TROE",
		pattern.Capturing(pattern.Number),
		pattern.Capturing(pattern.Number),
		pattern.Capturing(pattern.Number)))

	// Chebyshev blocks. The dimension block takes bare integers and the
	// coefficient rows take exponential floats; together with the \b anchor
	// that keeps TCHEB/PCHEB lines from matching the bare CHEB patterns,
	// this is what disambiguates the three CHEB-keyword shapes.
	reTcheb = regexp.MustCompile(pattern.SlashBlock("TCHEB",
		pattern.Capturing(pattern.Number),
		pattern.Capturing(pattern.Number)))
	rePcheb = regexp.MustCompile(pattern.SlashBlock("PCHEB",
		pattern.Capturing(pattern.Number),
		pattern.Capturing(pattern.Number)))
	reChebDim = regexp.MustCompile(pattern.SlashBlock(`\bCHEB`,
		pattern.Capturing(pattern.Integer),
		pattern.Capturing(pattern.Integer)))
	reChebRow = regexp.MustCompile(pattern.SlashBlock(`\bCHEB`,
		pattern.Capturing(pattern.Series(pattern.ExponentialFloat, pattern.OneOrMore(pattern.Space)))))

	// PLOG / P A b Ea /
	rePlog = regexp.MustCompile(pattern.SlashBlock("PLOG",
		pattern.Capturing(pattern.Number),
		pattern.Capturing(pattern.Number),
		pattern.Capturing(pattern.Number),
		pattern.Capturing(pattern.Number)))

	// Anchored auxiliary keyword detectors. Presence tests must not use bare
	// substring search: a species name can embed a keyword ("SLOW", "STROEM"),
	// and an equation line mentioning such a species is not an auxiliary
	// block. A keyword only counts at the start of a line.
	reLowKeyword  = regexp.MustCompile(`(?m)^[ \t]*LOW\b`)
	reTroeKeyword = regexp.MustCompile(`(?m)^[ \t]*TROE\b`)
	rePlogKeyword = regexp.MustCompile(`(?m)^[ \t]*PLOG\b`)

	// reAuxLine classifies one line as an auxiliary keyword line.
	reAuxLine = regexp.MustCompile(`^[ \t]*(?:DUPLICATE|DUP|LOW|TROE|TCHEB|PCHEB|CHEB|PLOG)\b`)

	// species/factor/ pairs on bath-gas efficiency lines.
	reEfficiencyPair = regexp.MustCompile(
		pattern.Capturing(pattern.OneOrMore(pattern.OneOf(
			pattern.Letter, pattern.Digit, `\(`, `\)`, pattern.Underscore))) +
			`/` + pattern.ZeroOrMore(pattern.LineSpace) +
			pattern.Capturing(pattern.Number) +
			pattern.ZeroOrMore(pattern.LineSpace) + `/`)
)
