package main

import (
	"fmt"
	"os"

	"github.com/apppass/apppass/cmd/apppass/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
