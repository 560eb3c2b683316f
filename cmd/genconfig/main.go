package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"rent-or-buy/internal/config"
)

// genconfig writes the built-in default configuration to a YAML file, as a
// starting point for editing.
func main() {
	outPath := flag.String("out", "config.yaml", "Output YAML path")
	force := flag.Bool("force", false, "Overwrite an existing file")
	flag.Parse()

	if !*force {
		if _, err := os.Stat(*outPath); err == nil {
			fmt.Printf("%s already exists (use --force to overwrite)\n", *outPath)
			os.Exit(1)
		}
	}

	if dir := filepath.Dir(*outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			panic(err)
		}
	}

	if err := config.Default().Save(*outPath); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote default config to %s\n", *outPath)
}
