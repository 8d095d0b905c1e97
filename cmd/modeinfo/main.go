// Command modeinfo prints baroclinic mode properties of idealized
// stratification profiles.
//
// Usage:
//
//	modeinfo [flags] [profile-name ...]
//
// Without arguments it prints info for all known profiles.
//
// Examples:
//
//	modeinfo uniform
//	modeinfo -depth 4000 -lat 30 exponential
//	modeinfo -modes 6 pycnocline
//	modeinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ocean/ocean/modes"
	"github.com/cwbudde/algo-ocean/ocean/profile"
)

type profileEntry struct {
	name     string
	describe string
	n2       func(depths []float64) []float64
}

var registry = []profileEntry{
	{
		"uniform",
		"constant N = 2e-3 1/s",
		func(depths []float64) []float64 {
			out := make([]float64, len(depths))
			for i := range out {
				out[i] = 4e-6
			}
			return out
		},
	},
	{
		"exponential",
		"N² decaying from 1e-4 with 500 m e-folding scale",
		func(depths []float64) []float64 {
			out := make([]float64, len(depths))
			for i, z := range depths {
				out[i] = 1e-4 * math.Exp(-z/500)
			}
			return out
		},
	},
	{
		"pycnocline",
		"weak background plus a Gaussian peak at 150 m",
		func(depths []float64) []float64 {
			out := make([]float64, len(depths))
			for i, z := range depths {
				d := (z - 150) / 60
				out[i] = 2e-6 + 1e-4*math.Exp(-d*d)
			}
			return out
		},
	},
}

func main() {
	depth := flag.Float64("depth", 2000, "bottom depth in meters")
	step := flag.Float64("step", 1, "vertical grid step in meters")
	nModes := flag.Int("modes", 4, "number of baroclinic modes")
	lat := flag.Float64("lat", 45, "latitude in degrees for the Coriolis parameter")
	all := flag.Bool("all", false, "show all stratification profiles")
	list := flag.Bool("list", false, "list available profile names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: modeinfo [flags] [profile-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints baroclinic mode properties of idealized stratification profiles.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all profiles.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  modeinfo uniform exponential\n")
		fmt.Fprintf(os.Stderr, "  modeinfo -depth 4000 -lat 30 exponential\n")
		fmt.Fprintf(os.Stderr, "  modeinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching profiles\n")
		os.Exit(1)
	}

	grid := profile.GridSpec{Step: *step, BottomDepth: *depth}
	f0 := modes.CoriolisAt(*lat)

	printAnalysis(entries, grid, *nModes, f0)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []profileEntry {
	byName := make(map[string]profileEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []profileEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown profile %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printAnalysis(entries []profileEntry, grid profile.GridSpec, nModes int, f0 float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Profile\tMode\tEigenvalue [1/m²]\tRadius [km]\tSurface Amp\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-------\t----\t-----------------\t-----------\t-----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		n2 := e.n2(grid.Midpoints())

		ms, err := modes.Solve(n2, grid, nModes, modes.WithCoriolis(f0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}

		for m := range ms.Eigenvalues {
			if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6e\t%.2f\t%.4f\n",
				e.name,
				m,
				ms.Eigenvalues[m],
				ms.Radii[m]/1000,
				ms.Modes[m][0],
			); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
				return
			}
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
