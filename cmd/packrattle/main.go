// Command packrattle is a small driver over the example configuration-
// binding grammar, useful for trying the engine against real input without
// writing a Go program against the library.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
