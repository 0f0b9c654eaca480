package main

import (
	"fmt"
	"os"

	"github.com/signatory-io/hashime/commands/hashimecli"
)

func main() {
	cmd := hashimecli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
