package main

import (
	"os"

	"github.com/lixenwraith/the-sequence/core"
)

// Set via ldflags at build time
var version = "dev"

func main() {
	// Panic Recovery: Ensure terminal is reset even if the display loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := newRootCommand(os.LookupEnv).Execute(); err != nil {
		os.Exit(1)
	}
}
