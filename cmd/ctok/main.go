package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Flag defaults may come from CTOK_* variables, optionally loaded
	// from a .env file next to the invocation.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "ctok",
		Short: "Strip and tokenize C source lines",
	}

	rootCmd.AddCommand(newProcessCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
