package commands

import (
	"fmt"
	"os"

	"tallyroom-backend/lib/configutil"
	configlibsql "tallyroom-backend/lib/configutil/libsql"
	"tallyroom-backend/lib/parties"
	"tallyroom-backend/lib/serviceutil"
	"tallyroom-backend/services/results"
	"tallyroom-backend/services/results/db"

	"github.com/spf13/cobra"
)

type Config struct {
	Database configlibsql.Struct `json:"database"`
}

func init() {
	storeCmd.Flags().AddFlagSet(scrapeCmd.Flags())
	rootCmd.AddCommand(storeCmd)
}

var storeCmd = &cobra.Command{
	Use:   "store --year <year> [--region <code>]",
	Short: "Scrapes election results and writes them to the database.",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to load configuration", err)
		}
		database, err := config.Database.OpenDB()
		if err != nil {
			serviceutil.Fatal("failed to open database", err)
		}
		defer database.Close()

		_, err = database.ExecContext(cmd.Context(), db.Schema)
		if err != nil {
			serviceutil.Fatal("failed to apply schema", err)
		}

		writer := results.NewWriter(database)
		canon := parties.NewCanonicalizer(parties.Default())
		err = writer.SeedParties(cmd.Context(), canon.Registered())
		if err != nil {
			serviceutil.Fatal("failed to seed parties", err)
		}

		result := runScrape(cmd.Context())
		renderResult(result)
		if !result.Success {
			os.Exit(1)
		}

		stored, failed := writer.StoreAll(cmd.Context(), *scrapeRegion, result.Records)
		fmt.Printf("stored %d records, %d failed\n", stored, failed)
		if failed > 0 {
			os.Exit(1)
		}
	},
}
