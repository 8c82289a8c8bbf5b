// Package mechanism isolates the reaction section of a whole CHEMKIN
// mechanism file and reads its units header. It is the thin collaborator in
// front of the reaction parser: everything downstream operates on the
// trimmed block text this package produces. Species and thermo sections are
// other consumers' concerns and are not parsed here.
package mechanism

import (
	"regexp"
	"strings"

	"github.com/turtacn/MechParse/pkg/errors"
	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

var (
	// reReactionBlock captures everything between the REACTIONS keyword line
	// and the matching END keyword, including the remainder of the header
	// line itself (the unit declarations).
	reReactionBlock = regexp.MustCompile(`(?ims)^[ \t]*REACTIONS?\b(.*?)^[ \t]*END\b`)

	reUnitsHeader = regexp.MustCompile(`(?im)^[ \t]*REACTIONS?\b([^\n]*)`)
)

// CHEMKIN defaults applied when the header declares nothing.
const (
	DefaultEnergyUnit = "cal/mole"
	DefaultMoleBasis  = "moles"
)

// energyUnits maps recognized header tokens to their canonical lower-case
// spelling.
var energyUnits = map[string]string{
	"CAL/MOLE":     "cal/mole",
	"KCAL/MOLE":    "kcal/mole",
	"JOULES/MOLE":  "joules/mole",
	"KJOULES/MOLE": "kjoules/mole",
	"KELVINS":      "kelvins",
	"EVOLTS":       "evolts",
}

var moleBases = map[string]string{
	"MOLES":     "moles",
	"MOLECULES": "molecules",
}

// ReactionBlock extracts the trimmed text of the REACTIONS...END section,
// with the header line removed so the result starts at the first reaction
// entry (or is empty for a mechanism with a bare header).
func ReactionBlock(mech string) (string, error) {
	m := reReactionBlock.FindStringSubmatch(mech)
	if m == nil {
		return "", errors.New(errors.ErrCodeBlockNotFound,
			"mechanism has no REACTIONS...END section")
	}
	body := m[1]
	// Drop the rest of the header line (unit tokens live there, not entries).
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}
	return strings.TrimSpace(body), nil
}

// ReactionUnits reads the unit declarations from the REACTIONS header line.
// Unset declarations fall back to the CHEMKIN defaults (cal/mole, moles);
// an unrecognized token on the header line is an error rather than a guess.
func ReactionUnits(mech string) (kinetics.ReactionUnits, error) {
	units := kinetics.ReactionUnits{
		Energy:    DefaultEnergyUnit,
		MoleBasis: DefaultMoleBasis,
	}
	m := reUnitsHeader.FindStringSubmatch(mech)
	if m == nil {
		return units, errors.New(errors.ErrCodeBlockNotFound,
			"mechanism has no REACTIONS header line")
	}

	header := m[1]
	// Header comments are not unit declarations.
	if i := strings.IndexByte(header, '!'); i >= 0 {
		header = header[:i]
	}
	for _, token := range strings.Fields(header) {
		upper := strings.ToUpper(token)
		if energy, ok := energyUnits[upper]; ok {
			units.Energy = energy
			continue
		}
		if basis, ok := moleBases[upper]; ok {
			units.MoleBasis = basis
			continue
		}
		return units, errors.Newf(errors.ErrCodeUnitsInvalid,
			"unrecognized unit token %q on REACTIONS header", token)
	}
	return units, nil
}
