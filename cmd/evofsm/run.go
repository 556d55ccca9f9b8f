package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evofsm/evofsm"
	"github.com/evofsm/evofsm/pkg/codec"
)

var runCmd = &cobra.Command{
	Use:   "run <encoded-genome> <input>...",
	Short: "Run input strings against a genome",
	Long: `run synthesizes a machine from the encoded genome and feeds it each
input string in turn, printing the run flags, the trace, and the output
word for every run.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		genome, err := codec.Decode(args[0])
		if err != nil {
			return err
		}
		genome.SortTransitions()

		if flags := eng.Validate(genome); flags != 0 {
			fmt.Printf("validation: %s\n", flags)
		}

		for _, input := range args[1:] {
			var rlog evofsm.RunLog
			flags := eng.Run(genome, input, &rlog)
			fmt.Printf("input=%q flags=%q accepted=%q output=%q trace=%v\n",
				input, flags.String(), rlog.AcceptedString, rlog.OutputString, rlog.Trace)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
