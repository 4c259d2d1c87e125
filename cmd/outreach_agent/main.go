// Package main provides the entry point for the Outreach Tracker server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "outreach_agent",
	Short: "Outreach Tracker scheduling server",
	Long:  "Outreach Tracker keeps company outreach on cadence: it computes next-due dates from logged communications, aggregates overdue and due-today notifications, and serves dashboard and calendar views over REST.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
