package main

import (
	"fmt"

	"github.com/sandevgo/suppd/internal/core"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", core.SuppName, core.SuppVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
