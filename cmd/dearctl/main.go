// Package main provides the entry point for the dearctl CLI.
package main

import (
	"github.com/reenu-kutty/dear-diary/internal/cli"
)

func main() {
	cli.Execute()
}
