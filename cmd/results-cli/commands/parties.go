package commands

import (
	"os"
	"sort"

	"tallyroom-backend/lib/parties"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(partiesCmd)
}

var partiesCmd = &cobra.Command{
	Use:   "parties",
	Short: "Prints the registered party taxonomy.",
	Run: func(cmd *cobra.Command, args []string) {
		registered := parties.NewCanonicalizer(parties.Default()).Registered()
		sort.Slice(registered, func(i, j int) bool {
			return registered[i].Name < registered[j].Name
		})

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Party", "Code"})
		for _, p := range registered {
			t.AppendRow(table.Row{p.Name, p.Code})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
