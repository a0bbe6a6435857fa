// lvlsearch runs A* searches described by scenario files.
//
// Usage:
//
//	lvlsearch run <scenario.yaml> [-o text|yaml]
//	lvlsearch batch <scenario.yaml>... [--parallel N] [-o text|yaml]
//	lvlsearch serve [--addr :8080]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Interrupts cancel running searches, which then report "canceled".
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
