// Package main provides the qlcdict CLI.
package main

import (
	"os"

	"github.com/glottolabs/qlcdict/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
