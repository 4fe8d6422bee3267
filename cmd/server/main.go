package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	port     string
	seedFile string
	seedDB   string
)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Employee roster manager",
	Long: `Serves a browser page for listing, searching, filtering, sorting and
editing employee records. Records live in memory for the life of the process
and are seeded from a YAML/JSON file, a SQLite database or the built-in list.

Run without a subcommand to start the server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the PDF roster report for the seed records",
	Long: `Loads the seed records, applies the optional search and sort, and
writes the roster report PDF.

Example:
  roster report --seed-file staff.yaml --sort department -o roster.pdf`,
	RunE: runReport,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&port, "port", "p", "", "Listen port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed-file", "", "YAML or JSON seed file (overrides SEED_FILE)")
	rootCmd.PersistentFlags().StringVar(&seedDB, "seed-db", "", "SQLite seed database (overrides SEED_DB)")

	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "-", "Output file, - for stdout")
	reportCmd.Flags().StringVar(&reportSearch, "search", "", "Search term applied before the report")
	reportCmd.Flags().StringVar(&reportSort, "sort", "", "Sort key: firstName or department")

	rootCmd.AddCommand(serveCmd, reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
