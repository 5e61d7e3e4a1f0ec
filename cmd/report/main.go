// Command report prints medal standings and CSV exports from a data
// directory without starting the HTTP server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Stderr.WriteString("report: " + err.Error() + "\n")
		os.Exit(1)
	}
}
