package main

import (
	"os"

	// Import stages to ensure their init() functions are called for registration
	_ "github.com/fieldworks/farmgate/pkg/stages"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
