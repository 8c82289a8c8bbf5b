package mechanism

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MechParse/pkg/errors"
)

const sampleMech = `ELEMENTS
H O N
END

SPECIES
H O2 OH O H2 H2O
END

REACTIONS  KCAL/MOLE  MOLECULES
H+O2=OH+O  1.915E+14  0.0  1.644E+04
H2+O=OH+H  5.08E+04  2.67  6.292E+03
END
`

func TestReactionBlock(t *testing.T) {
	t.Parallel()

	block, err := ReactionBlock(sampleMech)
	require.NoError(t, err)
	assert.Equal(t,
		"H+O2=OH+O  1.915E+14  0.0  1.644E+04\nH2+O=OH+H  5.08E+04  2.67  6.292E+03",
		block)
}

func TestReactionBlockMissing(t *testing.T) {
	t.Parallel()

	_, err := ReactionBlock("SPECIES\nH O2\nEND\n")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBlockNotFound))
	assert.True(t, errors.IsNotFound(err))
}

func TestReactionBlockBareHeader(t *testing.T) {
	t.Parallel()

	block, err := ReactionBlock("REACTIONS\nEND\n")
	require.NoError(t, err)
	assert.Equal(t, "", block)
}

func TestReactionUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		energy string
		basis  string
	}{
		{name: "defaults", header: "REACTIONS", energy: "cal/mole", basis: "moles"},
		{name: "kcal", header: "REACTIONS KCAL/MOLE", energy: "kcal/mole", basis: "moles"},
		{name: "joules", header: "REACTIONS JOULES/MOLE", energy: "joules/mole", basis: "moles"},
		{name: "kelvins", header: "REACTIONS KELVINS", energy: "kelvins", basis: "moles"},
		{name: "molecules only", header: "REACTIONS MOLECULES", energy: "cal/mole", basis: "molecules"},
		{name: "both declared", header: "REACTIONS KCAL/MOLE MOLECULES", energy: "kcal/mole", basis: "molecules"},
		{name: "order independent", header: "REACTIONS MOLECULES EVOLTS", energy: "evolts", basis: "molecules"},
		{name: "lower case accepted", header: "reactions kcal/mole", energy: "kcal/mole", basis: "moles"},
		{name: "header comment ignored", header: "REACTIONS KJOULES/MOLE ! rate units", energy: "kjoules/mole", basis: "moles"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mech := tt.header + "\nH+O2=OH+O  1.0E+14  0.0  1.5E+04\nEND\n"
			units, err := ReactionUnits(mech)
			require.NoError(t, err)
			assert.Equal(t, tt.energy, units.Energy)
			assert.Equal(t, tt.basis, units.MoleBasis)
		})
	}
}

func TestReactionUnitsUnrecognizedToken(t *testing.T) {
	t.Parallel()

	_, err := ReactionUnits("REACTIONS FURLONGS\nEND\n")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnitsInvalid))
}

func TestReactionUnitsNoHeader(t *testing.T) {
	t.Parallel()

	_, err := ReactionUnits("SPECIES\nH\nEND\n")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBlockNotFound))
}
