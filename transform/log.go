package transform

import (
	"io/ioutil"
	"log"
	"os"
)

// PrintDebugInfo controls whether logger writes to stderr. Toggle with
// SetDebugMode.
var PrintDebugInfo = false

var logger *log.Logger

func init() {
	logger = log.New(ioutil.Discard, "transform: ", log.Lshortfile)
}

// SetDebugMode turns the package logger on or off.
func SetDebugMode(v bool) {
	PrintDebugInfo = v
	if v {
		logger.SetOutput(os.Stderr)
	} else {
		logger.SetOutput(ioutil.Discard)
	}
}
