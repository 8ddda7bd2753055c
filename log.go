package yuletide

import (
	"fmt"
	"io"
	"os"
)

var logOutput io.Writer = os.Stderr

// SetLogOutput redirects diagnostic output. Passing nil restores stderr.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logOutput = w
}

// logf writes a single prefixed diagnostic line.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[yuletide] "+format+"\n", args...)
}

// logErr reports a recovered error. Errors never propagate past the point
// where a placeholder can be substituted.
func logErr(err error) {
	if err == nil {
		return
	}
	logf("%v", err)
}
