package reaction

import (
	"fmt"

	"github.com/turtacn/MechParse/pkg/errors"
	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

// ParseEntry runs every extractor over one immutable entry text and
// assembles the ReactionRecord. The extractors are independent and
// order-free; any malformed section surfaces as an error rather than a
// silently missing field, and an unparseable equation line fails the whole
// entry since no record is meaningful without reactant/product identity.
func ParseEntry(entry string) (*kinetics.ReactionRecord, error) {
	if entry == "" {
		return nil, errors.New(errors.ErrCodeEmptyEntry, "empty reaction entry")
	}

	record := &kinetics.ReactionRecord{Raw: entry}
	var err error

	if record.Reactants, err = ReactantNames(entry); err != nil {
		return nil, err
	}
	if record.Products, err = ProductNames(entry); err != nil {
		return nil, err
	}
	if record.HighP, err = HighPParameters(entry); err != nil {
		return nil, err
	}
	if record.LowP, err = LowPParameters(entry); err != nil {
		return nil, err
	}
	if record.Troe, err = TroeParameters(entry); err != nil {
		return nil, err
	}
	if record.Chebyshev, err = ChebyshevParameters(entry); err != nil {
		return nil, err
	}
	if record.Plog, err = PlogParameters(entry); err != nil {
		return nil, err
	}
	if record.Efficiencies, err = EnhancementFactors(entry); err != nil {
		return nil, err
	}
	return record, nil
}

// ParseBlock segments a reaction block and parses every entry, returning
// records aligned with entry order. The first malformed entry fails the
// whole call with its index attached; callers that prefer to skip bad
// entries segment and parse entry by entry instead.
func ParseBlock(block string) ([]*kinetics.ReactionRecord, error) {
	entries := Entries(block)
	records := make([]*kinetics.ReactionRecord, 0, len(entries))
	for i, entry := range entries {
		record, err := ParseEntry(entry)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeUnknown,
				fmt.Sprintf("entry %d failed to parse", i))
		}
		records = append(records, record)
	}
	return records, nil
}

// ParseBlockKeyed groups the raw entry texts by their (reactants, products)
// key. Entries sharing a key have their raw text concatenated with a newline
// under the first-seen key; the duplicated text is the duplicate-reaction
// signal interpreted by downstream consumers, so records are never merged.
func ParseBlockKeyed(block string) (map[kinetics.ReagentKey]string, error) {
	grouped := make(map[kinetics.ReagentKey]string)
	for i, entry := range Entries(block) {
		reactants, err := ReactantNames(entry)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeUnknown,
				fmt.Sprintf("entry %d failed to parse", i))
		}
		products, err := ProductNames(entry)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeUnknown,
				fmt.Sprintf("entry %d failed to parse", i))
		}
		key := kinetics.KeyFor(reactants, products)
		if existing, ok := grouped[key]; ok {
			grouped[key] = existing + "\n" + entry
		} else {
			grouped[key] = entry
		}
	}
	return grouped, nil
}
