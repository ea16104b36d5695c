package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
)

func main() {
	if err := Execute(); err != nil {
		// A closed pipe downstream (head, less) is a normal way for a
		// dump to end.
		if errors.Is(err, syscall.EPIPE) {
			os.Exit(0)
		}
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "hexane: error: %v\n", err)
		os.Exit(1)
	}
}
