package twig

import (
	"fmt"
	"io"
	"os"
	"time"
)

// logOutput receives every [twig] log line. Defaults to stderr.
var logOutput io.Writer = os.Stderr

// SetLogOutput redirects twig's log lines. A nil writer discards them.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	logOutput = w
}

// logf writes a single "[twig] ..." line to the log output.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[twig] "+format+"\n", args...)
}

// stepStats holds per-step timing and pair counts.
// Only populated when the World is in debug mode.
type stepStats struct {
	integrateTime time.Duration
	resolveTime   time.Duration
	bodyCount     int
	pairCount     int
	touchCount    int
	collideCount  int
}

// debugLog prints step stats to the log output.
func (w *World) debugLog(stats stepStats) {
	if !w.debug {
		return
	}
	logf("integrate: %v | resolve: %v | total: %v",
		stats.integrateTime, stats.resolveTime, stats.integrateTime+stats.resolveTime)
	logf("bodies: %d | pairs: %d | touches: %d | collisions: %d",
		stats.bodyCount, stats.pairCount, stats.touchCount, stats.collideCount)
}

// globalDebug mirrors the most recently set World debug flag so that body
// methods on deleted bodies (which no longer reach a World) can check it.
// Only valid with a single World; multiple Worlds with differing debug modes
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugCheckDeleted panics with a descriptive message when a deleted body is
// used. Callers only invoke it in debug mode; in release mode the operation
// is a silent no-op.
func debugCheckDeleted(b *Body, op string) {
	if b.world == nil {
		panic(fmt.Sprintf("twig debug: %s on deleted body (data %d)", op, b.Data))
	}
}

// debugMaxBodies is the live body count above which a debug-mode World warns
// that the all-pairs scan is getting expensive. Warns once per crossing.
const debugMaxBodies = 1000

func (w *World) debugCheckBodyCount() {
	if w.count == debugMaxBodies+1 {
		logf("warning: %d live bodies exceeds %d; collision scan is O(n²)", w.count, debugMaxBodies)
	}
}
