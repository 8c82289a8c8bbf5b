package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MechParse/pkg/errors"
	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

func TestPlogParametersGroupsByPressure(t *testing.T) {
	t.Parallel()

	entry := "CH3OH(+M)=CH3+OH(+M)  1.0E+12  0.0  0.0\n" +
		"PLOG / 0.01  1.0E+10  0.5  8.0E+03 /\n" +
		"PLOG / 1.0   2.0E+12  0.1  9.0E+03 /\n" +
		"PLOG / 1.0   3.0E+12  0.2  9.5E+03 /\n" +
		"PLOG / 10.0  4.0E+13  0.0  1.0E+04 /"
	params, err := PlogParameters(entry)
	require.NoError(t, err)
	require.Len(t, params, 3)

	require.Len(t, params[0.01], 1)
	assert.Equal(t, kinetics.ArrheniusTriple{A: 1.0e10, B: 0.5, Ea: 8.0e3}, params[0.01][0])

	// Two fits at the same pressure append in source order.
	require.Len(t, params[1.0], 2)
	assert.Equal(t, 2.0e12, params[1.0][0].A)
	assert.Equal(t, 3.0e12, params[1.0][1].A)

	require.Len(t, params[10.0], 1)
	assert.Equal(t, 4.0e13, params[10.0][0].A)
}

func TestPlogParametersAbsent(t *testing.T) {
	t.Parallel()

	params, err := PlogParameters("H+O2=OH+O  1.0E+14  0.0  1.5E+04")
	require.NoError(t, err)
	assert.Nil(t, params)
}

func TestPlogParametersMixedValidAndMalformed(t *testing.T) {
	t.Parallel()

	// One well-formed block must not mask a malformed sibling: the valid
	// subset is never returned as if it were the whole fit.
	entry := "CH3OH(+M)=CH3+OH(+M)  1.0E+12  0.0  0.0\n" +
		"PLOG / 1.0   2.0E+12  0.1  9.0E+03 /\n" +
		"PLOG / 10.0  4.0E+13 /"
	params, err := PlogParameters(entry)
	require.Error(t, err)
	assert.Nil(t, params)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBlockMalformed))
}

func TestPlogParametersKeywordInsideSpeciesName(t *testing.T) {
	t.Parallel()

	// "CPLOG" embeds the PLOG keyword inside a species name. The entry has
	// no pressure-dependent block, so extraction reports nothing.
	params, err := PlogParameters("H+CPLOG=OH+CPLO  1.0E+14  0.0  0.0")
	require.NoError(t, err)
	assert.Nil(t, params)
}

func TestPlogParametersWrongArity(t *testing.T) {
	t.Parallel()

	entry := "CH3OH(+M)=CH3+OH(+M)  1.0E+12  0.0  0.0\n" +
		"PLOG / 0.01  1.0E+10  0.5 /"
	_, err := PlogParameters(entry)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBlockMalformed))
}
