package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"stock-sync/feature/inventory"

	"github.com/spf13/cobra"
)

// vendorsCmd prints the supported vendor policies.
var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "List supported vendors and their feed layout",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VENDOR\tSLUG\tID COLUMN\tVALUE COLUMN\tHEADER ROW\tKIND\tTAGS\tALIASES")
		for _, v := range inventory.Vendors {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%t\t%s\n",
				v.Vendor, v.Slug, v.FeedIDColumn, v.FeedValueColumn,
				v.FeedHeaderRow, v.Kind, v.ChecksTags, strings.Join(v.Aliases, ", "))
		}
		_ = w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(vendorsCmd)
}
