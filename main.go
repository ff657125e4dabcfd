// Copyright 2020 Daniel Erat <dan@erat.org>.
// All rights reserved.

// statepop prints population statistics for U.S. states and the District of Columbia.
package main

import (
	"io"
	"log"
	"os"
)

func main() {
	if err := validate(states); err != nil {
		log.Fatal("Bad state data: ", err)
	}
	if _, err := io.WriteString(os.Stdout, render(states, expectedTotal)); err != nil {
		log.Fatal("Failed writing report: ", err)
	}
}
