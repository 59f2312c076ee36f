// Command mindweaver is the mindweaver editor and its command-line tools.
package main

import (
	"os"

	"github.com/phanxgames/mindweaver/internal/ui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		ui.Bad.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
