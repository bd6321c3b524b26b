// Package main provides the entry point for the portfolio HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_api",
	Short: "Portfolio HTTP API Server",
	Long:  "Portfolio API serves the site's AI assistant, English-Swahili translation, resume optimization, and resume PDF generation over REST.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
