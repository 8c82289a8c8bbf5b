package reaction

import (
	"strings"

	"github.com/turtacn/MechParse/pkg/errors"
	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

// HighPParameters collects every high-pressure Arrhenius coefficient group in
// the entry, in source order. An entry normally has exactly one, but
// multi-line fits repeat the equation-shaped coefficient line, so all matches
// are kept. Returns nil when no coefficient line matches at all.
func HighPParameters(entry string) ([]kinetics.ArrheniusTriple, error) {
	matches := reFirstLineCoeffs.FindAllStringSubmatch(entry, -1)
	if matches == nil {
		return nil, nil
	}
	params := make([]kinetics.ArrheniusTriple, 0, len(matches))
	for _, m := range matches {
		fields := strings.Fields(m[1])
		if len(fields) != 3 {
			return nil, errors.New(errors.ErrCodeBlockMalformed,
				"coefficient group does not hold exactly three numbers").
				WithDetail(m[1])
		}
		triple, err := parseTriple(fields[0], fields[1], fields[2])
		if err != nil {
			return nil, err
		}
		params = append(params, triple)
	}
	return params, nil
}

// LowPParameters extracts the LOW block's Arrhenius triple. Only the first
// occurrence is honored; CHEMKIN allows at most one LOW block per entry.
// A nil result with a nil error means the keyword is absent, which is the
// normal state for most entries; a LOW keyword whose block does not hold
// exactly three numbers is reported as malformed, never silently skipped.
func LowPParameters(entry string) (*kinetics.ArrheniusTriple, error) {
	m := reLow.FindStringSubmatch(entry)
	if m == nil {
		if reLowKeyword.MatchString(entry) {
			return nil, errors.New(errors.ErrCodeBlockMalformed,
				"LOW block present but does not hold exactly three numbers")
		}
		return nil, nil
	}
	triple, err := parseTriple(m[1], m[2], m[3])
	if err != nil {
		return nil, err
	}
	return &triple, nil
}
