package kinetics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MechParse/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MechParse/pkg/errors"
	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

const testBlock = "H+O2=OH+O  1.915E+14  0.0  1.644E+04\n" +
	"H2+O=OH+H  5.08E+04  2.67  6.292E+03\n" +
	"H+O2(+M)=HO2(+M)  4.65E+12  0.44  0.0\n" +
	"LOW / 6.366E+20  -1.72  5.248E+02 /\n" +
	"TROE / 0.5  1.0E-30  1.0E+30 /\n" +
	"H2/2.0/ H2O/14.0/ AR/0.67/"

func newTestService(opts Options) Service {
	return NewService(opts, logging.NewNopLogger(), nil)
}

func TestServiceParseBlock(t *testing.T) {
	t.Parallel()

	svc := newTestService(Options{Workers: 2})
	res, err := svc.ParseBlock(context.Background(), testBlock)
	require.NoError(t, err)

	assert.Equal(t, 3, res.EntryCount)
	require.Len(t, res.Records, 3)
	assert.Empty(t, res.Failures)

	// Source order is preserved regardless of worker scheduling.
	assert.Equal(t, kinetics.SpeciesList{"H", "O2"}, res.Records[0].Reactants)
	assert.Equal(t, kinetics.SpeciesList{"H2", "O"}, res.Records[1].Reactants)
	require.NotNil(t, res.Records[2].LowP)
	require.NotNil(t, res.Records[2].Troe)
	assert.Len(t, res.Records[2].Efficiencies, 3)
}

func TestServiceParseBlockCollectsFailures(t *testing.T) {
	t.Parallel()

	block := "H+O2=OH+O  1.915E+14  0.0  1.644E+04\n" +
		"H2+O=OH+H  5.08E+04  2.67  6.292E+03\n" +
		"LOW / 1.0E+14 /\n" +
		"H2+OH=H2O+H  2.16E+08  1.51  3.43E+03"

	svc := newTestService(Options{Workers: 2})
	res, err := svc.ParseBlock(context.Background(), block)
	require.NoError(t, err)

	assert.Equal(t, 3, res.EntryCount)
	assert.Len(t, res.Records, 2)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, 1, res.Failures[0].Index)
	assert.Equal(t, errors.ErrCodeBlockMalformed, res.Failures[0].Code)
	assert.Equal(t, "H2+O=OH+H  5.08E+04  2.67  6.292E+03", res.Failures[0].Entry)
}

func TestServiceParseBlockFailFast(t *testing.T) {
	t.Parallel()

	block := "H+O2=OH+O  1.915E+14  0.0  1.644E+04\n" +
		"H2+O=OH+H  5.08E+04  2.67  6.292E+03\n" +
		"LOW / 1.0E+14 /"

	svc := newTestService(Options{Workers: 1, FailFast: true})
	_, err := svc.ParseBlock(context.Background(), block)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBlockMalformed))
}

func TestServiceParseBlockFailFastCallerCancellation(t *testing.T) {
	t.Parallel()

	// A caller-canceled context must surface as an error even in fail-fast
	// mode: unprocessed entries must never be passed off as a clean result.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newTestService(Options{Workers: 2, FailFast: true})
	_, err := svc.ParseBlock(ctx, testBlock)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTimeout))
}

func TestServiceParseBlockEmpty(t *testing.T) {
	t.Parallel()

	svc := newTestService(Options{})
	_, err := svc.ParseBlock(context.Background(), "no equations here")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeEmptyEntry))
}

func TestServiceParseMechanism(t *testing.T) {
	t.Parallel()

	mech := "REACTIONS KCAL/MOLE\n" + testBlock + "\nEND\n"
	svc := newTestService(Options{Workers: 4})
	res, err := svc.ParseMechanism(context.Background(), mech)
	require.NoError(t, err)

	assert.Equal(t, "kcal/mole", res.Units.Energy)
	assert.Equal(t, "moles", res.Units.MoleBasis)
	assert.Len(t, res.Records, 3)
}

func TestServiceParseMechanismNoBlock(t *testing.T) {
	t.Parallel()

	svc := newTestService(Options{})
	_, err := svc.ParseMechanism(context.Background(), "SPECIES\nH O2\nEND\n")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestServiceKeyedEntries(t *testing.T) {
	t.Parallel()

	block := "OH+OH=H2O2  7.4E+13  -0.37  0.0\n" +
		"2OH=H2O2  3.0E+13  0.0  0.0"
	svc := newTestService(Options{})
	keyed, err := svc.KeyedEntries(context.Background(), block)
	require.NoError(t, err)
	require.Len(t, keyed, 1)
	assert.Contains(t, keyed[kinetics.ReagentKey("OH+OH=H2O2")], "2OH=H2O2")
}

func TestServiceKeyedEntriesCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newTestService(Options{})
	_, err := svc.KeyedEntries(ctx, "H+O2=OH+O  1.0E+14  0.0  1.5E+04")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTimeout))
}
