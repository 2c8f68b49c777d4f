package marquee

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Scene debug flag so that engine
// and node operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// debugf writes one "[marquee]" line to stderr in debug mode.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[marquee] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("marquee debug: %s on disposed node %q", op, n.Name))
	}
}
