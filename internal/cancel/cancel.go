// Package cancel provides the single process-wide cancellation flag the
// search loops (brute-force, generator, finder) poll at the top of each
// iteration. Generalized from the teacher's cmd/server graceful-shutdown
// signal handling.
package cancel

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

var flag atomic.Bool

// Requested reports whether cancellation has been signaled.
func Requested() bool {
	return flag.Load()
}

// Request sets the cancellation flag. Idempotent.
func Request() {
	flag.Store(true)
}

// Reset clears the cancellation flag, for tests or a fresh run in the same
// process.
func Reset() {
	flag.Store(false)
}

// InstallSignalHandler sets the cancellation flag on SIGINT/SIGTERM and
// returns a function that stops listening. Intended for cmd/* entry points;
// the deduction core itself never touches signals.
func InstallSignalHandler() (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case <-ch:
			Request()
		case <-done:
		}
	}()
	return func() {
		close(done)
		signal.Stop(ch)
	}
}
