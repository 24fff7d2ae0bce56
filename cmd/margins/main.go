// Command margins is the CLI entry point for the margins metadata tool.
package main

import (
	"github.com/mesh-intelligence/margins/internal/cli"
)

func main() {
	cli.Execute()
}
