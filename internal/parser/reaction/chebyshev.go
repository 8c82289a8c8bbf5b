package reaction

import (
	"strings"

	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

// ChebyshevParameters extracts a Chebyshev rate fit. All four block kinds
// must be present and individually matchable: the TCHEB temperature limits,
// the PCHEB pressure limits, the integer CHEB dimension block, and at least
// one CHEB coefficient row. Partial Chebyshev data is treated as absent, not
// partially reported. Rows keep their source order; the matrix shape is not
// validated against the declared dimensions here.
func ChebyshevParameters(entry string) (*kinetics.ChebyshevParams, error) {
	tm := reTcheb.FindStringSubmatch(entry)
	pm := rePcheb.FindStringSubmatch(entry)
	dm := reChebDim.FindStringSubmatch(entry)
	rows := reChebRow.FindAllStringSubmatch(entry, -1)
	if tm == nil || pm == nil || dm == nil || len(rows) == 0 {
		return nil, nil
	}

	var (
		params kinetics.ChebyshevParams
		err    error
	)
	if params.TLimits[0], err = parseFloat(tm[1]); err != nil {
		return nil, err
	}
	if params.TLimits[1], err = parseFloat(tm[2]); err != nil {
		return nil, err
	}
	if params.PLimits[0], err = parseFloat(pm[1]); err != nil {
		return nil, err
	}
	if params.PLimits[1], err = parseFloat(pm[2]); err != nil {
		return nil, err
	}
	if params.AlphaDim[0], err = parseInt(dm[1]); err != nil {
		return nil, err
	}
	if params.AlphaDim[1], err = parseInt(dm[2]); err != nil {
		return nil, err
	}

	params.AlphaElm = make([][]float64, 0, len(rows))
	for _, rm := range rows {
		fields := strings.Fields(rm[1])
		row := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := parseFloat(f)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		params.AlphaElm = append(params.AlphaElm, row)
	}
	return &params, nil
}
