package main

import (
	"github.com/hypersort/cmd/cli/cmd"
)

func main() {
	cmd.Execute()
}
