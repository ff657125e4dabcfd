// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

package main

import (
	"errors"
	"fmt"
	"math"
)

// validate checks that every record in sts can be reported on.
// An error describing the first bad record is returned.
func validate(sts []state) error {
	if len(sts) == 0 {
		return errors.New("no states")
	}
	seen := make(map[string]struct{}, len(sts))
	for i, s := range sts {
		if s.name == "" {
			return fmt.Errorf("state %d: empty name", i)
		}
		if _, ok := seen[s.name]; ok {
			return fmt.Errorf("state %d: duplicate name %q", i, s.name)
		}
		seen[s.name] = struct{}{}

		if s.pop < 0 {
			return fmt.Errorf("state %d (%q): negative population %d", i, s.name, s.pop)
		}
		// basePop is the denominator for change().
		if s.basePop <= 0 {
			return fmt.Errorf("state %d (%q): base population %d not positive", i, s.name, s.basePop)
		}
		if math.IsNaN(s.area) || math.IsInf(s.area, 0) || s.area <= 0 {
			return fmt.Errorf("state %d (%q): land area %v not positive", i, s.name, s.area)
		}
		if math.IsNaN(s.medAge) || math.IsInf(s.medAge, 0) || s.medAge < 0 {
			return fmt.Errorf("state %d (%q): bad median age %v", i, s.name, s.medAge)
		}
	}
	return nil
}
