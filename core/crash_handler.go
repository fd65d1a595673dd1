package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores a terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer

	// exit and stderr are replaced in tests
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// RegisterCrashScreen sets the screen restored by HandleCrash; nil clears it
func RegisterCrashScreen(s Finalizer) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashScreen = s
}

// HandleCrash restores the terminal, prints the panic with its stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	// Restore terminal first so the trace is readable
	if s != nil {
		s.Fini()
	}

	fmt.Fprintf(stderr, "\n\x1b[31mTHE SEQUENCE CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(stderr, "Stack Trace:\n%s\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
