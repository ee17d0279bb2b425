package cmd

import (
	"fmt"

	"github.com/dnszone/zonecode/zone"
	"github.com/spf13/cobra"
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Print which indexer variant the dispatcher would pick on this machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(zone.SelectedTarget())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetCmd)
}
