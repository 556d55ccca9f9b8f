package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evofsm/evofsm/internal/adapters/file"
	"github.com/evofsm/evofsm/pkg/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate <population-file>",
	Short: "Validate every genome in a population file",
	Long: `validate decodes each line of the population file and reports its
validation flags. Genomes that are not clean DFAs are listed with the
reasons; with --all, clean genomes are listed too.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		all, _ := cmd.Flags().GetBool("all")

		total, dirty := 0, 0
		err = file.LoadGenomes(args[0], func(key string, g domain.Genome, id int) {
			total++
			flags := eng.Validate(g)
			if flags != 0 {
				dirty++
			}
			if flags != 0 || all {
				fmt.Printf("%d: %s\n", id, flags)
			}
		})
		if err != nil {
			return err
		}

		fmt.Printf("%d genomes checked, %d with findings\n", total, dirty)
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("all", false, "Report clean genomes as well")
	rootCmd.AddCommand(validateCmd)
}
