package reaction

import (
	"strings"

	"github.com/turtacn/MechParse/pkg/errors"
	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

// ReactantNames recovers the ordered reactant species list from one entry.
// A failure to match the composed first-line pattern means the equation line
// is malformed; no record can be built from such an entry, so this is a hard
// error rather than an empty list.
func ReactantNames(entry string) (kinetics.SpeciesList, error) {
	m := reFirstLineReactants.FindStringSubmatch(entry)
	if m == nil {
		return nil, errEquation(entry)
	}
	return splitReagents(m[1])
}

// ProductNames recovers the ordered product species list from one entry.
func ProductNames(entry string) (kinetics.SpeciesList, error) {
	m := reFirstLineProducts.FindStringSubmatch(entry)
	if m == nil {
		return nil, errEquation(entry)
	}
	return splitReagents(m[1])
}

func errEquation(entry string) error {
	line := entry
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return errors.New(errors.ErrCodeEquationUnparseable,
		"reaction equation line does not match the expected shape").
		WithDetail(strings.TrimSpace(line))
}

// splitReagents turns one captured reagent string into a SpeciesList:
// line-internal spaces and third-body markers are stripped, the string is
// split at plus signs that are not part of a trailing ionic charge, and a
// single leading digit on a token is expanded as a stoichiometric count.
func splitReagents(side string) (kinetics.SpeciesList, error) {
	side = reLineSpace.ReplaceAllString(side, "")
	side = reParenPlusM.ReplaceAllString(side, "")
	side = rePlusM.ReplaceAllString(side, "")

	var names kinetics.SpeciesList
	for _, token := range splitOnSinglePlus(side) {
		if token == "" {
			continue
		}
		count := 1
		if token[0] >= '0' && token[0] <= '9' {
			count = int(token[0] - '0')
			token = token[1:]
		}
		if token == "" || count == 0 {
			return nil, errors.New(errors.ErrCodeEquationUnparseable,
				"reagent token reduces to an empty species name").
				WithDetail(side)
		}
		for i := 0; i < count; i++ {
			names = append(names, token)
		}
	}
	return names, nil
}

// splitOnSinglePlus splits s at every '+' that is not immediately followed by
// another '+' and is not the final character. A doubled "++" keeps its first
// plus attached to the preceding token (ionic charge), and a trailing plus
// belongs to the last species name.
func splitOnSinglePlus(s string) []string {
	var (
		parts []string
		start int
	)
	for i := 0; i < len(s); i++ {
		if s[i] != '+' {
			continue
		}
		if i+1 >= len(s) || s[i+1] == '+' {
			continue
		}
		parts = append(parts, s[start:i])
		start = i + 1
	}
	return append(parts, s[start:])
}
