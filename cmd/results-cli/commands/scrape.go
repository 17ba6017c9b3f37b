package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"tallyroom-backend/lib/scrapers/abcnews"
	"tallyroom-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	scrapeRegion  *string
	scrapeYear    *string
	scrapeTimeout *time.Duration
)

func init() {
	scrapeRegion = scrapeCmd.Flags().String("region", "federal", "Lowercase jurisdiction code, e.g. federal, nsw, wa.")
	scrapeYear = scrapeCmd.Flags().String("year", "", "Election year, e.g. 2022.")
	scrapeTimeout = scrapeCmd.Flags().Duration("timeout", time.Second*45, "Overall deadline for the whole scrape.")
	scrapeCmd.MarkFlagRequired("year")
	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(ctx context.Context) abcnews.Result {
	client, err := abcnews.NewClient(abcnews.ClientOptions{})
	if err != nil {
		serviceutil.Fatal("failed to initialize scrape client", err)
	}

	ctx, cancel := context.WithTimeout(ctx, *scrapeTimeout)
	defer cancel()

	return client.Scrape(ctx, abcnews.Request{
		Region: *scrapeRegion,
		Year:   *scrapeYear,
	})
}

func renderResult(result abcnews.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Electorate", "Member", "Party", "Margin %", "Margin Votes", "Swing %"})

	for _, r := range result.Records {
		t.AppendRow(table.Row{
			r.Electorate,
			fmt.Sprintf("%s %s", r.FirstName, r.LastName),
			r.PartyCode,
			fmt.Sprintf("%.1f", r.MarginPercent),
			r.MarginVotes,
			fmt.Sprintf("%+.1f", r.SwingPercent),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	if result.WinningTier != "" {
		fmt.Printf(
			"%d records via tier %s in %s\n",
			result.TotalFound,
			result.WinningTier,
			result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond),
		)
	}
	for _, e := range result.Errors {
		fmt.Fprintln(os.Stderr, "attempt failed:", e)
	}
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape --year <year> [--region <code>]",
	Short: "Scrapes election results and prints them as a table.",
	Run: func(cmd *cobra.Command, args []string) {
		result := runScrape(cmd.Context())
		renderResult(result)
		if !result.Success {
			os.Exit(1)
		}
	},
}
