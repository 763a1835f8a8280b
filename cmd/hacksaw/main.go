// Command hacksaw is a small terminal text editor.
//
//	hacksaw [file]
//
// Ctrl+Q quits, Ctrl+S saves (asking for a file name when there is none).
package main

import (
	"fmt"
	"os"
)

// version is injected via ldflags at build time.
var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hacksaw: %v\n", err)
		os.Exit(1)
	}
}
