package reaction

import (
	"github.com/turtacn/MechParse/pkg/errors"
	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

// TroeParameters extracts the TROE falloff block. Candidate patterns are
// tried most-specific-first: the four-parameter form, then the
// three-parameter form with the fourth value explicitly absent (nil). A TROE
// keyword matching neither form is malformed.
func TroeParameters(entry string) (*kinetics.TroeParams, error) {
	if m := reTroe4.FindStringSubmatch(entry); m != nil {
		return troeFromTokens(m[1], m[2], m[3], m[4])
	}
	if m := reTroe3.FindStringSubmatch(entry); m != nil {
		return troeFromTokens(m[1], m[2], m[3], "")
	}
	if reTroeKeyword.MatchString(entry) {
		return nil, errors.New(errors.ErrCodeBlockMalformed,
			"TROE block present but holds neither three nor four numbers")
	}
	return nil, nil
}

func troeFromTokens(alpha, t3, t1, t2 string) (*kinetics.TroeParams, error) {
	var (
		params kinetics.TroeParams
		err    error
	)
	if params.Alpha, err = parseFloat(alpha); err != nil {
		return nil, err
	}
	if params.T3, err = parseFloat(t3); err != nil {
		return nil, err
	}
	if params.T1, err = parseFloat(t1); err != nil {
		return nil, err
	}
	if t2 != "" {
		v, err := parseFloat(t2)
		if err != nil {
			return nil, err
		}
		params.T2 = &v
	}
	return &params, nil
}
