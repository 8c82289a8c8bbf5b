package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MechParse/pkg/errors"
)

func TestTroeParametersFourParameterForm(t *testing.T) {
	t.Parallel()

	entry := "H+O2(+M)=HO2(+M)  4.65E+12  0.44  0.0\n" +
		"LOW / 6.366E+20  -1.72  5.248E+02 /\n" +
		"TROE / 0.5  1.0E-30  1.0E+30  1.0E+100 /"
	params, err := TroeParameters(entry)
	require.NoError(t, err)
	require.NotNil(t, params)
	assert.Equal(t, 0.5, params.Alpha)
	assert.Equal(t, 1.0e-30, params.T3)
	assert.Equal(t, 1.0e30, params.T1)
	require.NotNil(t, params.T2)
	assert.Equal(t, 1.0e100, *params.T2)
}

func TestTroeParametersThreeParameterForm(t *testing.T) {
	t.Parallel()

	entry := "H+O2(+M)=HO2(+M)  4.65E+12  0.44  0.0\n" +
		"TROE / 0.5  1.0E-30  1.0E+30 /"
	params, err := TroeParameters(entry)
	require.NoError(t, err)
	require.NotNil(t, params)
	assert.Equal(t, 0.5, params.Alpha)
	assert.Nil(t, params.T2)
}

func TestTroeParametersAbsent(t *testing.T) {
	t.Parallel()

	params, err := TroeParameters("H+O2=OH+O  1.0E+14  0.0  1.5E+04")
	require.NoError(t, err)
	assert.Nil(t, params)
}

func TestTroeParametersKeywordInsideSpeciesName(t *testing.T) {
	t.Parallel()

	// "STROEM" embeds the TROE keyword; an equation line mentioning it is
	// not an auxiliary block.
	params, err := TroeParameters("STROEM+H=STROE+MH  1.0E+14  0.0  0.0")
	require.NoError(t, err)
	assert.Nil(t, params)
}

func TestTroeParametersWrongArity(t *testing.T) {
	t.Parallel()

	entry := "H+O2(+M)=HO2(+M)  4.65E+12  0.44  0.0\n" +
		"TROE / 0.5  1.0E-30 /"
	_, err := TroeParameters(entry)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBlockMalformed))
}
