package reaction

import (
	"strings"

	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

// EnhancementFactors extracts the bath-gas collision-efficiency factors of
// one entry. Factors are only meaningful for pressure-dependent reactions,
// so extraction is attempted only when the entry carries a LOW or TROE
// keyword line. Every line except the equation line and the recognized
// keyword lines is scanned for species/factor/ pairs; pairs from all
// qualifying lines merge into one mapping, last write winning on a repeated
// species. Returns nil when no pair is found anywhere.
func EnhancementFactors(entry string) (kinetics.EfficiencyFactors, error) {
	if !reLowKeyword.MatchString(entry) && !reTroeKeyword.MatchString(entry) {
		return nil, nil
	}

	var factors kinetics.EfficiencyFactors
	for _, line := range strings.Split(entry, "\n") {
		if isKeywordLine(line) || reFirstLinePlain.MatchString(line) {
			continue
		}
		for _, m := range reEfficiencyPair.FindAllStringSubmatch(line, -1) {
			factor, err := parseFloat(m[2])
			if err != nil {
				return nil, err
			}
			if factors == nil {
				factors = make(kinetics.EfficiencyFactors)
			}
			factors[m[1]] = factor
		}
	}
	return factors, nil
}

func isKeywordLine(line string) bool {
	return reAuxLine.MatchString(line)
}
