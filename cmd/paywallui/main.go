// Package main is the entry point for the paywallui CLI.
package main

import "github.com/reoring/paywallui/internal/cli"

func main() {
	cli.Execute()
}
