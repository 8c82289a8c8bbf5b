package reaction

import (
	"github.com/turtacn/MechParse/pkg/errors"
	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

// PlogParameters extracts every PLOG block of the entry and groups the
// Arrhenius triples by their reference pressure. Blocks sharing a pressure
// append to that key's list in encounter order; nothing is overwritten.
// Returns nil when the entry carries no PLOG blocks. Every PLOG keyword line
// must yield a matched four-number block: one malformed line among valid
// ones fails the extraction rather than silently shrinking the mapping.
func PlogParameters(entry string) (kinetics.PlogParams, error) {
	matches := rePlog.FindAllStringSubmatch(entry, -1)
	if keywords := rePlogKeyword.FindAllStringIndex(entry, -1); len(keywords) != len(matches) {
		return nil, errors.New(errors.ErrCodeBlockMalformed,
			"PLOG block present but does not hold exactly four numbers")
	}
	if matches == nil {
		return nil, nil
	}

	params := make(kinetics.PlogParams, len(matches))
	for _, m := range matches {
		pressure, err := parseFloat(m[1])
		if err != nil {
			return nil, err
		}
		triple, err := parseTriple(m[2], m[3], m[4])
		if err != nil {
			return nil, err
		}
		params[pressure] = append(params[pressure], triple)
	}
	return params, nil
}
