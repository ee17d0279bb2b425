package main

import (
	"os"

	"github.com/dnszone/zonecode/cmd/zonescan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
