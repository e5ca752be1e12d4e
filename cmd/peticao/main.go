// Command peticao estimates labor claims and assembles petitions from the
// command line, without a server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
