// Package main provides the backup-extractor CLI.
package main

import "github.com/mesh-intelligence/backup-extractor/internal/cli"

func main() {
	cli.Execute()
}
