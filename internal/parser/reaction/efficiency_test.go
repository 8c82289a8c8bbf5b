package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

func TestEnhancementFactors(t *testing.T) {
	t.Parallel()

	entry := "H+O2(+M)=HO2(+M)  4.65E+12  0.44  0.0\n" +
		"LOW / 6.366E+20  -1.72  5.248E+02 /\n" +
		"TROE / 0.5  1.0E-30  1.0E+30 /\n" +
		"H2/2.0/ H2O/14.0/ O2/0.78/ AR/0.67/"
	factors, err := EnhancementFactors(entry)
	require.NoError(t, err)
	assert.Equal(t, kinetics.EfficiencyFactors{
		"H2": 2.0, "H2O": 14.0, "O2": 0.78, "AR": 0.67,
	}, factors)
}

func TestEnhancementFactorsMergeAcrossLines(t *testing.T) {
	t.Parallel()

	entry := "H+O2(+M)=HO2(+M)  4.65E+12  0.44  0.0\n" +
		"LOW / 6.366E+20  -1.72  5.248E+02 /\n" +
		"H2/2.0/ H2O/14.0/\n" +
		"AR/0.67/ HE/0.8/"
	factors, err := EnhancementFactors(entry)
	require.NoError(t, err)
	assert.Equal(t, kinetics.EfficiencyFactors{
		"H2": 2.0, "H2O": 14.0, "AR": 0.67, "HE": 0.8,
	}, factors)
}

func TestEnhancementFactorsOnlyForPressureDependentEntries(t *testing.T) {
	t.Parallel()

	// Same factor line shape, but no LOW or TROE keyword anywhere.
	entry := "H2+M=H+H+M  4.58E+19  -1.4  1.04E+05\n" +
		"H2/2.5/ H2O/12.0/"
	factors, err := EnhancementFactors(entry)
	require.NoError(t, err)
	assert.Nil(t, factors)
}

func TestEnhancementFactorsKeywordInsideSpeciesName(t *testing.T) {
	t.Parallel()

	// A species name embedding "LOW" does not make the entry pressure
	// dependent, so the factor-shaped line stays unextracted.
	entry := "SLOW+O2+M=SO3+M  1.0E+14  0.0  0.0\n" +
		"H2/2.5/ H2O/12.0/"
	factors, err := EnhancementFactors(entry)
	require.NoError(t, err)
	assert.Nil(t, factors)
}

func TestEnhancementFactorsIgnoreKeywordLines(t *testing.T) {
	t.Parallel()

	// The LOW and TROE blocks hold slash-delimited numbers that must not be
	// misread as species/factor pairs.
	entry := "H+O2(+M)=HO2(+M)  4.65E+12  0.44  0.0\n" +
		"LOW / 6.366E+20  -1.72  5.248E+02 /\n" +
		"TROE / 0.5  1.0E-30  1.0E+30 /"
	factors, err := EnhancementFactors(entry)
	require.NoError(t, err)
	assert.Nil(t, factors)
}

func TestEnhancementFactorsParenthesizedSpecies(t *testing.T) {
	t.Parallel()

	entry := "C2H4(+M)=C2H2+H2(+M)  8.0E+12  0.44  8.877E+04\n" +
		"LOW / 1.58E+51  -9.3  9.78E+04 /\n" +
		"C2H6(1)/3.0/ N2/1.0/"
	factors, err := EnhancementFactors(entry)
	require.NoError(t, err)
	assert.Equal(t, kinetics.EfficiencyFactors{"C2H6(1)": 3.0, "N2": 1.0}, factors)
}
