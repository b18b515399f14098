// Command ui runs the sample view tree headless and inspects ui.yaml.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/ui/cmd/ui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
