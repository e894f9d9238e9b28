// The main package for the leaderscraper executable.
package main

import (
	"github.com/courtside/leaderscraper/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
