// Package kinetics defines the data types produced by the CHEMKIN reaction
// parser and consumed by every layer of MechParse. No parsing logic lives
// here, only plain data types that are safe to import from any layer without
// creating circular dependencies.
//
// All values are derived, read-only views materialized from one parse call:
// nothing in this package is mutated after construction.
package kinetics

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// SpeciesList: ordered reagent names with multiplicity
// ─────────────────────────────────────────────────────────────────────────────

// SpeciesList is an ordered sequence of species-name tokens. A species that
// appears with stoichiometric count N is repeated N times; order therefore
// encodes multiplicity, not just set membership.
type SpeciesList []string

// Counts collapses the list into a name → stoichiometric-count map.
func (l SpeciesList) Counts() map[string]int {
	if len(l) == 0 {
		return nil
	}
	counts := make(map[string]int, len(l))
	for _, name := range l {
		counts[name]++
	}
	return counts
}

// String renders the list in CHEMKIN reagent notation, e.g. "OH+OH" for a
// doubled species.
func (l SpeciesList) String() string {
	return strings.Join(l, "+")
}

// ─────────────────────────────────────────────────────────────────────────────
// ArrheniusTriple: (A, b, Ea) of k = A·T^b·exp(-Ea/RT)
// ─────────────────────────────────────────────────────────────────────────────

// ArrheniusTriple holds one modified-Arrhenius parameterization in the
// mechanism file's native units; unit interpretation and conversion are the
// caller's concern.
type ArrheniusTriple struct {
	// A is the pre-exponential factor.
	A float64 `json:"a"`

	// B is the temperature exponent.
	B float64 `json:"b"`

	// Ea is the activation energy.
	Ea float64 `json:"ea"`
}

// ─────────────────────────────────────────────────────────────────────────────
// TroeParams: falloff broadening parameters
// ─────────────────────────────────────────────────────────────────────────────

// TroeParams holds the Troe falloff parameters (alpha, T***, T*, T**).
// T2 is nil when the mechanism supplies the three-parameter form; it is never
// coerced to a numeric default.
type TroeParams struct {
	Alpha float64  `json:"alpha"`
	T3    float64  `json:"t3"` // T***
	T1    float64  `json:"t1"` // T*
	T2    *float64 `json:"t2,omitempty"` // T**, absent in the 3-parameter form
}

// ─────────────────────────────────────────────────────────────────────────────
// ChebyshevParams: 2-D polynomial rate fit
// ─────────────────────────────────────────────────────────────────────────────

// ChebyshevParams holds a Chebyshev polynomial rate parameterization.
// AlphaElm rows are kept in source order; their shape is not validated
// against AlphaDim here; a downstream consumer may choose to.
type ChebyshevParams struct {
	// TLimits is (Tmin, Tmax) from the TCHEB block.
	TLimits [2]float64 `json:"t_limits"`

	// PLimits is (Pmin, Pmax) from the PCHEB block.
	PLimits [2]float64 `json:"p_limits"`

	// AlphaDim is (Nt, Np): declared row and column counts of the matrix.
	AlphaDim [2]int `json:"alpha_dim"`

	// AlphaElm is the coefficient matrix, row-major.
	AlphaElm [][]float64 `json:"alpha_elm"`
}

// ─────────────────────────────────────────────────────────────────────────────
// PlogParams: pressure-indexed Arrhenius fits
// ─────────────────────────────────────────────────────────────────────────────

// PlogParams maps a reference pressure to the Arrhenius fits declared at that
// pressure. Multiple PLOG blocks sharing a pressure all appear under that key
// in encounter order; none is ever overwritten.
type PlogParams map[float64][]ArrheniusTriple

// MarshalJSON encodes the pressure keys as their shortest round-trippable
// decimal strings. encoding/json rejects float-keyed maps outright, so
// without this a record carrying PLOG data cannot be serialized at all.
func (p PlogParams) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	out := make(map[string][]ArrheniusTriple, len(p))
	for pressure, fits := range p {
		out[strconv.FormatFloat(pressure, 'g', -1, 64)] = fits
	}
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON; a key that does not parse
// back to a float64 is an error.
func (p *PlogParams) UnmarshalJSON(data []byte) error {
	var raw map[string][]ArrheniusTriple
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*p = nil
		return nil
	}
	out := make(PlogParams, len(raw))
	for key, fits := range raw {
		pressure, err := strconv.ParseFloat(key, 64)
		if err != nil {
			return fmt.Errorf("plog pressure key %q is not a number: %w", key, err)
		}
		out[pressure] = fits
	}
	*p = out
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// EfficiencyFactors: bath-gas collision efficiencies
// ─────────────────────────────────────────────────────────────────────────────

// EfficiencyFactors maps a bath-species name to its multiplicative third-body
// collision efficiency. Only meaningful for entries that carry a LOW or TROE
// auxiliary block.
type EfficiencyFactors map[string]float64

// ─────────────────────────────────────────────────────────────────────────────
// ReactionRecord: full parse result for one entry
// ─────────────────────────────────────────────────────────────────────────────

// ReactionRecord is the complete structured result for one reaction entry.
// Every optional field is nil when its keyword block is absent from the entry;
// absence is a valid, common state, not an error.
type ReactionRecord struct {
	// Reactants and Products are always present on a successfully parsed entry.
	Reactants SpeciesList `json:"reactants"`
	Products  SpeciesList `json:"products"`

	// HighP holds the high-pressure Arrhenius fits from the equation line(s),
	// in source order. More than one element signals a multi-line fit.
	HighP []ArrheniusTriple `json:"high_p,omitempty"`

	// LowP holds the LOW block triple.
	LowP *ArrheniusTriple `json:"low_p,omitempty"`

	// Troe holds the TROE block parameters.
	Troe *TroeParams `json:"troe,omitempty"`

	// Chebyshev holds the TCHEB/PCHEB/CHEB fit; nil unless all four block
	// kinds are present.
	Chebyshev *ChebyshevParams `json:"chebyshev,omitempty"`

	// Plog holds the PLOG blocks grouped by pressure.
	Plog PlogParams `json:"plog,omitempty"`

	// Efficiencies holds the bath-gas enhancement factors.
	Efficiencies EfficiencyFactors `json:"efficiencies,omitempty"`

	// Raw is the entry's source text, preserved for duplicate-reaction
	// aggregation and diagnostics.
	Raw string `json:"raw,omitempty"`
}

// ─────────────────────────────────────────────────────────────────────────────
// ReagentKey: aggregation key for duplicate-reaction detection
// ─────────────────────────────────────────────────────────────────────────────

// ReagentKey is the canonical (reactants, products) key used by keyed
// aggregation. It preserves source order and multiplicity on both sides, so
// "OH+OH=H2O2" and "2OH=H2O2" collide while "OH+H=H2O" does not.
type ReagentKey string

// KeyFor builds the ReagentKey for a reactant/product pair.
func KeyFor(reactants, products SpeciesList) ReagentKey {
	return ReagentKey(reactants.String() + "=" + products.String())
}

// Key returns the record's own ReagentKey.
func (r *ReactionRecord) Key() ReagentKey {
	return KeyFor(r.Reactants, r.Products)
}

// ─────────────────────────────────────────────────────────────────────────────
// ReactionUnits: declared units of the reaction block header
// ─────────────────────────────────────────────────────────────────────────────

// ReactionUnits carries the unit declarations from the REACTIONS header line.
// The parser only reports them; it never converts values.
type ReactionUnits struct {
	// Energy is the activation-energy unit, lower-case (e.g. "cal/mole").
	Energy string `json:"energy"`

	// MoleBasis is "moles" or "molecules".
	MoleBasis string `json:"mole_basis"`
}
