package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evofsm/evofsm/internal/adapters/file"
	"github.com/evofsm/evofsm/pkg/domain"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a population of random genomes",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		states, _ := cmd.Flags().GetInt("states")
		randomEmission, _ := cmd.Flags().GetBool("random-emission")
		out, _ := cmd.Flags().GetString("out")

		genomes := make([]domain.Genome, 0, count)
		for i := 0; i < count; i++ {
			genomes = append(genomes, eng.RandomGenome(states, randomEmission))
		}

		if err := file.WriteGenomes(out, genomes); err != nil {
			return err
		}
		fmt.Printf("Wrote %d genomes to %s\n", len(genomes), out)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("count", "n", 10, "Number of genomes to generate")
	generateCmd.Flags().Int("states", 3, "Number of states per genome")
	generateCmd.Flags().Bool("random-emission", false, "Draw write symbols randomly instead of echoing the read symbol")
	generateCmd.Flags().StringP("out", "o", "genomes.dfa", "Output population file")
	rootCmd.AddCommand(generateCmd)
}
