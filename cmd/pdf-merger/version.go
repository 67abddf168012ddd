package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of pdf-merger",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pdf-merger %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
