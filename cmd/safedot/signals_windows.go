//go:build windows

package main

import (
	"os"
	"syscall"
)

func getSignalsForPlatform() []os.Signal {
	return []os.Signal{os.Interrupt, syscall.SIGTERM}
}

func isSIGTSTPForPlatform(os.Signal) bool {
	return false
}
