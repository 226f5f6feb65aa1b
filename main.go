// Package main is the entry point for the portal CLI.
// It manages an authenticated session with the portal backend.
package main

import (
	"portal/cli/cmd"
)

func main() {
	cmd.Execute()
}
