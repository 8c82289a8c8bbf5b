package cli

import (
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/turtacn/MechParse/pkg/types/kinetics"
)

func newSpeciesCommand() *cobra.Command {
	var bare bool

	cmd := &cobra.Command{
		Use:   "species FILE",
		Short: "List the species participating in a mechanism's reactions",
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

			var records []*kinetics.ReactionRecord
			if bare {
				res, err := cc.Service.ParseBlock(cmd.Context(), text)
				if err != nil {
					return err
				}
				records = res.Records
			} else {
				res, err := cc.Service.ParseMechanism(cmd.Context(), text)
				if err != nil {
					return err
				}
				records = res.Records
			}

			// Count appearances over both reaction sides.
			counts := map[string]int{}
			for _, r := range records {
				for name, n := range r.Reactants.Counts() {
					counts[name] += n
				}
				for name, n := range r.Products.Counts() {
					counts[name] += n
				}
			}
			names := make([]string, 0, len(counts))
			for name := range counts {
				names = append(names, name)
			}
			sort.Strings(names)

			return PrintResult(cmd.OutOrStdout(), cc.Opts, counts, func(w io.Writer) error {
				rows := make([][]string, 0, len(names))
				for _, name := range names {
					rows = append(rows, []string{name, strconv.Itoa(counts[name])})
				}
				return FormatTable(w, []string{"SPECIES", "APPEARANCES"}, rows)
			})
		},
	}

	cmd.Flags().BoolVar(&bare, "block", false, "treat input as a bare reaction block")
	return cmd
}

func newUnitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "units FILE",
		Short: "Show the rate coefficient units a mechanism declares",
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
			res, err := cc.Service.ParseMechanism(cmd.Context(), text)
			if err != nil {
				return err
			}
			return PrintResult(cmd.OutOrStdout(), cc.Opts, res.Units, func(w io.Writer) error {
				return FormatTable(w,
					[]string{"ENERGY", "MOLE BASIS"},
					[][]string{{res.Units.Energy, res.Units.MoleBasis}})
			})
		},
	}
}
