// Package main provides the entry point for the team generator HTTP API
// server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "team_agent",
	Short: "AI Team Generator HTTP API Server",
	Long:  "Team Generator assembles candidate pools from the employee database and delegates team formation, compatibility scoring and leader selection to an LLM via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
