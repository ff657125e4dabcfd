// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"
)

const (
	totalLabel    = "US Total (sum of states+DC): "
	expectedLabel = "Expected:"
)

// density returns s's population per square mile of land.
func (s state) density() float64 {
	return float64(s.pop) / s.area
}

// change returns the percent change from s's base population to its current population.
func (s state) change() float64 {
	return float64(s.pop-s.basePop) / float64(s.basePop) * 100
}

// displayName returns the name used for s in reports.
func (s state) displayName() string {
	if s.name == "District of Columbia" {
		return "DC"
	}
	return s.name
}

// sumPop returns the total current population of sts.
func sumPop(sts []state) int {
	var total int
	for _, s := range sts {
		total += s.pop
	}
	return total
}

// writeReport writes a human-readable report about sts to w.
// expected is compared against the sum of the current populations.
func writeReport(w io.Writer, sts []state, expected int) error {
	var writeErr error
	writef := func(format string, args ...interface{}) {
		if writeErr == nil {
			_, writeErr = fmt.Fprintf(w, format, args...)
		}
	}

	total := sumPop(sts)
	match := "False"
	if total == expected {
		match = "True"
	}
	writef("%s%d\n", totalLabel, total)
	writef("%-*s%d\n", len(totalLabel), expectedLabel, expected)
	writef("Match: %s\n\n", match)

	for _, s := range sts {
		writef("%s: pop=%d, dn=%.1f, ch=%.1f, ag=%.1f\n",
			s.displayName(), s.pop, s.density(), s.change(), s.medAge)
	}

	return writeErr
}

// render returns the report that writeReport would write for sts.
func render(sts []state, expected int) string {
	var b strings.Builder
	writeReport(&b, sts, expected) // strings.Builder never returns errors
	return b.String()
}
