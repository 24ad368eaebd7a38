// Package main is the entry point for the Quillbox CLI application.
// It provides client-side session management against the Quillbox service.
package main

import (
	"quillbox/cli/cmd"
)

// main is the entry point for the Quillbox CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
