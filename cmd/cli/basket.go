package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var basketCmd = &cobra.Command{
	Use:   "basket <productId>...",
	Short: "Split a shopping list across stores by cheapest current price",
	Long: `Assign each product to the store with its lowest current price and print
one list per store. Products no store carries are left out.`,
	Example: `  price-comparator basket P001 P002 P003
  price-comparator basket P001,P002`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ids []string
		for _, arg := range args {
			for _, id := range strings.Split(arg, ",") {
				if id = strings.TrimSpace(id); id != "" {
					ids = append(ids, id)
				}
			}
		}

		allocation, err := analyzer.Allocate(cmd.Context(), ids)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "STORE\tPRODUCT\tNAME\tPRICE")
		fmt.Fprintln(w, "-----\t-------\t----\t-----")
		for _, store := range allocation.StoreNames() {
			for _, o := range allocation.Stores[store] {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2f %s\n", store, o.Snapshot.ProductID, o.Snapshot.ProductName, o.Price, o.Currency)
			}
		}
		w.Flush()

		fmt.Fprintf(out, "\n%d of %d items, total %.2f\n", allocation.ItemCount(), len(ids), allocation.TotalCost)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(basketCmd)
}
