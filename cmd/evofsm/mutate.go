package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evofsm/evofsm/internal/adapters/file"
	"github.com/evofsm/evofsm/pkg/domain"
)

var mutateCmd = &cobra.Command{
	Use:   "mutate <population-file>",
	Short: "Mutate every genome in a population file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		rounds, _ := cmd.Flags().GetInt("rounds")
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = args[0]
		}

		var offspring []domain.Genome
		err = file.LoadGenomes(args[0], func(key string, g domain.Genome, id int) {
			for i := 0; i < rounds; i++ {
				g = eng.Mutate(g)
			}
			offspring = append(offspring, g)
		})
		if err != nil {
			return err
		}

		if err := file.WriteGenomes(out, offspring); err != nil {
			return err
		}
		fmt.Printf("Wrote %d mutated genomes to %s\n", len(offspring), out)
		return nil
	},
}

func init() {
	mutateCmd.Flags().Int("rounds", 1, "Number of mutation rounds per genome")
	mutateCmd.Flags().StringP("out", "o", "", "Output file (defaults to the input file)")
	rootCmd.AddCommand(mutateCmd)
}
