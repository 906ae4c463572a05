// Command shelf is the CLI for the Shelf catalog system.
package main

import "github.com/mesh-intelligence/shelf/internal/cli"

func main() {
	cli.Execute()
}
