package reaction

import (
	"strconv"
	"strings"

	"github.com/turtacn/MechParse/pkg/errors"
	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

// parseFloat converts one numeric token to a float64. Fortran-style D
// exponents ("1.0D-2") are normalized to E before conversion. A token that
// cannot be converted is a hard per-field error, never silently defaulted.
func parseFloat(token string) (float64, error) {
	normalized := strings.NewReplacer("D", "E", "d", "e").Replace(token)
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, errors.Newf(errors.ErrCodeNumericCoercion,
			"cannot convert %q to a number", token).WithCause(err)
	}
	return v, nil
}

// parseInt converts one integer token.
func parseInt(token string) (int, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.Newf(errors.ErrCodeNumericCoercion,
			"cannot convert %q to an integer", token).WithCause(err)
	}
	return v, nil
}

// parseTriple converts three captured tokens to an ArrheniusTriple.
func parseTriple(a, b, ea string) (kinetics.ArrheniusTriple, error) {
	var (
		triple kinetics.ArrheniusTriple
		err    error
	)
	if triple.A, err = parseFloat(a); err != nil {
		return triple, err
	}
	if triple.B, err = parseFloat(b); err != nil {
		return triple, err
	}
	if triple.Ea, err = parseFloat(ea); err != nil {
		return triple, err
	}
	return triple, nil
}
