package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "zonescan",
		Short:        "zonescan",
		SilenceUsage: true,
		Long:         `CLI tool for parsing DNS master files and loading the records into a target database.`,
	}

	originFlag       string
	defaultTTLFlag   uint32
	defaultClassFlag string
	debugFlag        bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&originFlag, "origin", "o", "", "zone origin, e.g. example.com.")
	rootCmd.PersistentFlags().Uint32Var(&defaultTTLFlag, "default-ttl", 3600, "default TTL used until a record or $TTL overrides it")
	rootCmd.PersistentFlags().StringVar(&defaultClassFlag, "default-class", "IN", "default class used until a record overrides it")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "dump every accepted record with repr")
	return rootCmd.Execute()
}
