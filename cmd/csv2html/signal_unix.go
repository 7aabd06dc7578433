//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals cancel a running conversion.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
