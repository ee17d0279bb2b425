package zone

import (
	"os"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// target names a selectable indexer variant, mirroring original_source/
// zone.c's target_t{name, instruction_set, parse}.
type target struct {
	name   string
	kernel indexKernel
	probe  func() bool // true if this target's instruction set is usable
}

var targets = []target{
	{name: "haswell", kernel: indexHaswell, probe: func() bool { return cpuid.CPU.Supports(cpuid.AVX2) }},
	{name: "westmere", kernel: indexWestmere, probe: func() bool { return cpuid.CPU.Supports(cpuid.SSE42) }},
	{name: "fallback", kernel: indexFallback, probe: func() bool { return true }},
}

// selectTarget reproduces original_source/zone.c's select_target: consult
// ZONE_TARGET first, falling back to normal priority order (spec §4.8, §6)
// if the requested name is unknown or unsupported on this CPU.
func selectTarget() target {
	if preferred := os.Getenv("ZONE_TARGET"); preferred != "" {
		for _, t := range targets {
			if strings.EqualFold(preferred, t.name) && t.probe() {
				return t
			}
		}
	}
	for _, t := range targets {
		if t.probe() {
			return t
		}
	}
	return targets[len(targets)-1]
}

// SelectedTarget returns the name of the indexer variant the dispatcher
// would currently pick, for diagnostics (the `zonescan target` CLI command).
func SelectedTarget() string {
	return selectTarget().name
}
