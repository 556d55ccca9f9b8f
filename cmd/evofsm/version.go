package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evofsm/evofsm"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of evofsm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("evofsm version %s\n", evofsm.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
