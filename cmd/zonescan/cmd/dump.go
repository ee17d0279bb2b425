package cmd

import (
	"errors"
	"fmt"

	"github.com/dnszone/zonecode/zone"
	"github.com/dnszone/zonecode/zonetest"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <zonefile>",
	Short: "Parse a master file and print each decoded RR back in presentation form",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify exactly one <zonefile> argument")
		}
		if originFlag == "" {
			return errors.New("--origin is required")
		}

		class, err := parseDefaultClass(defaultClassFlag)
		if err != nil {
			return err
		}

		f := zonetest.NewFixture(originFlag)
		f.DefaultTTL = defaultTTLFlag
		f.DefaultClass = class

		parseErr := f.Parse(args[0])
		for _, r := range f.Records {
			text, perr := zone.Present(r.Owner, r.Type, r.Class, r.TTL, r.RData)
			if perr != nil {
				return perr
			}
			fmt.Print(text)
		}
		dumpIfRequested(f.Records)
		return parseErr
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

// dumpIfRequested prints every accepted record via zonetest's repr-based
// dumper when --debug was passed, the zonescan equivalent of sqlcode's
// QueryDump.
func dumpIfRequested(records []zonetest.Record) {
	if !debugFlag {
		return
	}
	zonetest.DumpRecords(records)
}

func reportErrors(records []zonetest.Record, err error) {
	fmt.Printf("%d records accepted\n", len(records))
	for _, r := range records {
		if !r.Owner.LooksLikeHostname() {
			fmt.Printf("warning: owner %q contains bytes that aren't hostname-safe\n", r.Owner.String())
		}
	}
	if err != nil {
		fmt.Println("parse stopped with an error:", err)
	}
}
