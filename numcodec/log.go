package numcodec

import (
	"io"
	"log"
	"os"
)

// PrintDebugInfo toggles the package logger, exactly like wasm/log.go and
// validate/log.go in the teacher repo. Off by default; the logger discards
// everything until SetDebugMode(true) is called. The value is read once at
// package init; assigning it afterwards does not change the logger.
var PrintDebugInfo = false

var logger *log.Logger

func init() {
	var w io.Writer = io.Discard
	if PrintDebugInfo {
		w = os.Stderr
	}
	logger = log.New(w, "numcodec: ", log.Lshortfile)
}

// SetDebugMode toggles verbose logging for this package.
func SetDebugMode(v bool) {
	PrintDebugInfo = v
	w := io.Writer(io.Discard)
	if v {
		w = os.Stderr
	}
	logger.SetOutput(w)
}
