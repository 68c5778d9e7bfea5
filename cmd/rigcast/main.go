// Package main is the entry point for the rigcast CLI.
//
// Usage:
//
//	rigcast [flags] <command> [args]
//
// Commands:
//
//	export     - Export a rig and its animations to the runtime client
//	send       - Send raw commands to the runtime client
//	templates  - List or deliver shipped static templates
//	config     - Configuration management (contexts)
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/voxrig/rigcast/cmd/rigcast/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
