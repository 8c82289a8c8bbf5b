package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	appkin "github.com/turtacn/MechParse/internal/application/kinetics"
	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

func newParseCommand() *cobra.Command {
	var bare bool

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse the reaction block of a mechanism file",
		Long:  "Parse FILE (or stdin with \"-\") and print every reaction with its\nrate data. By default FILE is a full mechanism and the REACTIONS block\nis located first; --block treats the input as a bare reaction block.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := mustCLIContext(cmd)
			if err != nil {
				return err
			}
			text, err := readInput(args[0])
			if err != nil {
				return err
			}

			var res *appkin.ParseResult
			var units *kinetics.ReactionUnits
			if bare {
				res, err = cc.Service.ParseBlock(cmd.Context(), text)
			} else {
				var mres *appkin.MechanismResult
				mres, err = cc.Service.ParseMechanism(cmd.Context(), text)
				if mres != nil {
					res = &mres.ParseResult
					units = &mres.Units
				}
			}
			if err != nil {
				return err
			}

			return PrintResult(cmd.OutOrStdout(), cc.Opts, res, func(w io.Writer) error {
				if units != nil {
					fmt.Fprintf(w, "units: %s, %s\n", units.Energy, units.MoleBasis)
				}
				if err := writeRecordTable(w, res.Records); err != nil {
					return err
				}
				for _, f := range res.Failures {
					fmt.Fprintf(w, "entry %d failed [%s]: %s\n", f.Index, f.Code, f.Message)
				}
				fmt.Fprintf(w, "%d entries, %d parsed, %d failed\n",
					res.EntryCount, len(res.Records), len(res.Failures))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&bare, "block", false, "treat input as a bare reaction block")
	return cmd
}

func writeRecordTable(w io.Writer, records []*kinetics.ReactionRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Reactants.String() + " = " + r.Products.String(),
			formatTriples(r.HighP),
			rateExtras(r),
		})
	}
	return FormatTable(w, []string{"REACTION", "ARRHENIUS", "EXTRAS"}, rows)
}

func formatTriples(ts []kinetics.ArrheniusTriple) string {
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		parts = append(parts, fmt.Sprintf("A=%g b=%g Ea=%g", t.A, t.B, t.Ea))
	}
	return strings.Join(parts, "; ")
}

func rateExtras(r *kinetics.ReactionRecord) string {
	var parts []string
	if r.LowP != nil {
		parts = append(parts, "LOW")
	}
	if r.Troe != nil {
		parts = append(parts, "TROE")
	}
	if r.Chebyshev != nil {
		parts = append(parts, "CHEB")
	}
	if len(r.Plog) > 0 {
		pressures := make([]float64, 0, len(r.Plog))
		for p := range r.Plog {
			pressures = append(pressures, p)
		}
		sort.Float64s(pressures)
		ps := make([]string, 0, len(pressures))
		for _, p := range pressures {
			ps = append(ps, strconv.FormatFloat(p, 'g', -1, 64))
		}
		parts = append(parts, "PLOG("+strings.Join(ps, ",")+")")
	}
	if len(r.Efficiencies) > 0 {
		parts = append(parts, fmt.Sprintf("EFF(%d)", len(r.Efficiencies)))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func newKeyedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keyed FILE",
		Short: "Map each reaction entry to its reagent key",
		Long:  "Print each entry of a bare reaction block keyed by its reagents\nand products. Duplicate reactions share one key and their entries are\nconcatenated.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := mustCLIContext(cmd)
			if err != nil {
				return err
			}
			block, err := readInput(args[0])
			if err != nil {
				return err
			}
			keyed, err := cc.Service.KeyedEntries(cmd.Context(), block)
			if err != nil {
				return err
			}

			return PrintResult(cmd.OutOrStdout(), cc.Opts, keyed, func(w io.Writer) error {
				keys := make([]string, 0, len(keyed))
				for k := range keyed {
					keys = append(keys, string(k))
				}
				sort.Strings(keys)
				rows := make([][]string, 0, len(keys))
				for _, k := range keys {
					entry := keyed[kinetics.ReagentKey(k)]
					lines := strings.Count(entry, "\n") + 1
					rows = append(rows, []string{k, strconv.Itoa(lines)})
				}
				return FormatTable(w, []string{"KEY", "LINES"}, rows)
			})
		},
	}
}
