package main

import (
	"fmt"
	"os"

	"github.com/Lumos-Labs-HQ/kons-seed/cmd"
	"github.com/fatih/color"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("❌ %v", err))
		os.Exit(1)
	}
}
