package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/outreach-tracker/internal/observability"
	"github.com/jonathan/outreach-tracker/internal/seed"
	"github.com/jonathan/outreach-tracker/internal/store"
)

var (
	reportSeedFile string
	reportSection  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a scheduling report for a seed file",
	Long:  `Load companies from a JSON seed file and print the dashboard, notification, and calendar views to the terminal without starting a server.`,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportSeedFile, "seed", "", "JSON seed file to report on (required)")
	reportCmd.Flags().StringVar(&reportSection, "section", "all", "Section to print: dashboard, notifications, calendar, or all")
	_ = reportCmd.MarkFlagRequired("seed")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	switch reportSection {
	case "all", "dashboard", "notifications", "calendar":
	default:
		return fmt.Errorf("unknown section %q: expected dashboard, notifications, calendar, or all", reportSection)
	}

	st := store.New()
	if err := seed.LoadInto(st, reportSeedFile); err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)

	if reportSection == "all" || reportSection == "dashboard" {
		printer.PrintDashboard(st.Dashboard())
	}
	if reportSection == "all" || reportSection == "notifications" {
		printer.PrintNotifications(st.Notifications())
	}
	if reportSection == "all" || reportSection == "calendar" {
		printer.PrintCalendar(st.CalendarEvents())
	}

	return nil
}
