// Command keyset-browse pages through the exercise library, the workouts and
// the workout log groups of a training database.
//
//	keyset-browse --config keyset.yaml exercises --grip Pronated --grip Neutral
//
// Once a page is shown, commands are read from stdin:
//
//	n      next page
//	p      previous page
//	l N    page size N, back to page 1
//	r      back to page 1
//	q      quit
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
