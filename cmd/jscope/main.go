// Command jscope resolves the lexical scopes of JavaScript files.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "jscope: %v\n", err)
		}
		os.Exit(1)
	}
}
