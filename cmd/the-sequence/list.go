package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/the-sequence/sequence"
)

func newListCommand(root *rootOptions) *cobra.Command {
	var (
		count     uint64
		showSteps bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print values of the sequence without the display",
		Long: `Prints count consecutive values to stdout, one per line, starting at the
step given by --from (or the config file). No timing is applied.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.resolve(cmd)
			if err != nil {
				return err
			}

			gen := sequence.NewGenerator()
			gen.SkipTo(cfg.From)

			out := cmd.OutOrStdout()
			for i := uint64(0); i < count; i++ {
				if showSteps {
					fmt.Fprintf(out, "%d\t%s\n", gen.Step(), gen.Current())
				} else {
					fmt.Fprintln(out, gen.Current())
				}
				gen.Advance()
			}
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&count, "count", "n", 10, "number of values to print")
	cmd.Flags().BoolVar(&showSteps, "steps", false, "prefix each value with its step")

	return cmd
}
