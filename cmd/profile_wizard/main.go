// Package main provides the entry point for the Profile Wizard HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profile_wizard",
	Short: "Profile Wizard HTTP API Server",
	Long:  "Profile Wizard guides jobseekers through a step-by-step profile interview and rewrites raw biographies into clean Turkish prose via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
