package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"threatscout/internal/config"
	"threatscout/internal/database"
	"threatscout/internal/export"
	"threatscout/internal/sources"
	"threatscout/internal/support"
)

// Run wires the CLI and executes the requested subcommand.
func Run() error {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found. Falling back to system environment variables.")
	}

	var (
		dbPath  string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:           "threatscout",
		Short:         "Automated OSINT-based threat intelligence collector",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
			config.ReadSettings()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db",
		support.GetEnv("THREATSCOUT_DB", "threat_intel.db"),
		"Path to the sqlite database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug-level logging")

	rootCmd.AddCommand(collectCmd(&dbPath))
	rootCmd.AddCommand(exportCmd(&dbPath))
	rootCmd.AddCommand(statsCmd(&dbPath))

	return rootCmd.Execute()
}

func collectCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "collect",
		Short: "Fetch IoCs from all registered feeds and store new records",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := database.NewStore(*dbPath)
			if err := store.Open(); err != nil {
				return err
			}
			defer closeStore(store)

			ctx := context.Background()
			totalInserted := 0

			for _, source := range sources.All(config.GetConfig()) {
				log.Info("Collecting", "source", source.Name())

				records := source.Fetch(ctx)
				inserted, err := store.InsertMany(records)
				if err != nil {
					return err
				}
				totalInserted += inserted
			}

			total, err := store.Count()
			if err != nil {
				return err
			}

			log.Info("Collection complete", "new", totalInserted, "total", total)
			return nil
		},
	}
}

func exportCmd(dbPath *string) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored IoCs to a flat file",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := database.NewStore(*dbPath)
			if err := store.Open(); err != nil {
				return err
			}
			defer closeStore(store)

			records, err := store.FetchAll()
			if err != nil {
				return err
			}

			if len(records) == 0 {
				log.Warn("No records in the database, nothing to export")
				return nil
			}

			return export.Write(records, format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json or csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file path")
	cmd.MarkFlagRequired("format")
	cmd.MarkFlagRequired("output")

	return cmd
}

func statsCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print corpus statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := database.NewStore(*dbPath)
			if err := store.Open(); err != nil {
				return err
			}
			defer closeStore(store)

			total, err := store.Count()
			if err != nil {
				return err
			}

			byType, err := store.CountByType()
			if err != nil {
				return err
			}
			bySource, err := store.CountBySource()
			if err != nil {
				return err
			}
			byRisk, err := store.CountByRiskLevel()
			if err != nil {
				return err
			}

			fmt.Printf("Total records: %d\n", total)

			fmt.Println("By type:")
			for iocType, count := range byType {
				fmt.Printf("  %-10s %d\n", iocType, count)
			}

			fmt.Println("By source:")
			for source, count := range bySource {
				fmt.Printf("  %-16s %d\n", source, count)
			}

			fmt.Println("By risk level:")
			for risk, count := range byRisk {
				fmt.Printf("  %-10s %d\n", risk, count)
			}

			return nil
		},
	}
}

func closeStore(store *database.Store) {
	if err := store.Close(); err != nil {
		log.Warn("error closing store", "error", err)
	}
}
