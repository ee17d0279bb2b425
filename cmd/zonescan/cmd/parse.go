package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dnszone/zonecode/zone"
	"github.com/dnszone/zonecode/zonetest"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <zonefile>",
	Short: "Parse a master file and report how many records were accepted",
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
		dumpIfRequested(f.Records)
		reportErrors(f.Records, parseErr)
		return parseErr
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parseDefaultClass(text string) (zone.Class, error) {
	switch strings.ToUpper(text) {
	case "IN":
		return zone.ClassIN, nil
	case "CS":
		return zone.ClassCS, nil
	case "CH":
		return zone.ClassCH, nil
	case "HS":
		return zone.ClassHS, nil
	default:
		return 0, fmt.Errorf("unrecognized --default-class %q", text)
	}
}
