package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "evofsm",
	Short: "evofsm is an evolvable finite-state-machine engine",
	Long: `evofsm generates, mutates, validates, runs, and minimizes finite state
machines encoded as flat genomes. Populations are stored as text files with
one genome per line.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the engine config file (YAML)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 = nondeterministic)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
