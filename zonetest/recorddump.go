package zonetest

import (
	"fmt"

	"github.com/alecthomas/repr"
)

// DumpRecords pretty-prints every accepted record, the zonetest analogue of
// sqltest.DumpRows/QueryDump — used from a failing test's t.Log, or from
// cmd/zonescan's --debug flag, to see exactly what the parser assembled.
func DumpRecords(records []Record) {
	fmt.Println("============================")
	for _, r := range records {
		fmt.Println(r.String())
		fmt.Println(repr.String(r))
		fmt.Println("----------------")
	}
}
