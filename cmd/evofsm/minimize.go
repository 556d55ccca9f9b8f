package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evofsm/evofsm/internal/adapters/file"
	"github.com/evofsm/evofsm/pkg/domain"
)

var minimizeCmd = &cobra.Command{
	Use:   "minimize <population-file>",
	Short: "Minimize every genome in a population file",
	Long: `minimize synthesizes a machine for each genome, removes unreachable
states, merges equivalent ones, and writes the re-encoded genomes back
out. Only genomes that validate as clean DFAs are minimized; the rest
are passed through unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = args[0]
		}

		minimized, skipped := 0, 0
		var result []domain.Genome
		err = file.LoadGenomes(args[0], func(key string, g domain.Genome, id int) {
			if flags := eng.Validate(g); flags != 0 {
				skipped++
				result = append(result, g)
				return
			}

			m := eng.NewMachine(g)
			m.Init()
			reduced := eng.Minimize(m)
			m.Free()

			minimized++
			result = append(result, reduced)
		})
		if err != nil {
			return err
		}

		if err := file.WriteGenomes(out, result); err != nil {
			return err
		}
		fmt.Printf("Wrote %s: %d minimized, %d passed through\n", out, minimized, skipped)
		return nil
	},
}

func init() {
	minimizeCmd.Flags().StringP("out", "o", "", "Output file (defaults to the input file)")
	rootCmd.AddCommand(minimizeCmd)
}
