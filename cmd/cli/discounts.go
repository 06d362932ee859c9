package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kosarica/price-comparator/internal/catalog"
)

var (
	discountsAsOf string
	discountsTop  int
)

var discountsCmd = &cobra.Command{
	Use:   "discounts",
	Short: "Query store discounts",
}

var bestDiscountsCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the highest active discounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asOf, err := asOfFlag(discountsAsOf)
		if err != nil {
			return err
		}
		discounts, err := analyzer.BestDiscounts(cmd.Context(), asOf, discountsTop)
		if err != nil {
			return err
		}
		displayDiscounts(cmd.OutOrStdout(), discounts)
		return nil
	},
}

var newDiscountsCmd = &cobra.Command{
	Use:   "new",
	Short: "Show discounts that started within the last day",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asOf, err := asOfFlag(discountsAsOf)
		if err != nil {
			return err
		}
		discounts, err := analyzer.NewDiscounts(cmd.Context(), asOf)
		if err != nil {
			return err
		}
		displayDiscounts(cmd.OutOrStdout(), discounts)
		return nil
	},
}

var activeDiscountsCmd = &cobra.Command{
	Use:   "active",
	Short: "Show every active discount",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		asOf, err := asOfFlag(discountsAsOf)
		if err != nil {
			return err
		}
		discounts, err := analyzer.ActiveDiscounts(cmd.Context(), asOf)
		if err != nil {
			return err
		}
		displayDiscounts(cmd.OutOrStdout(), discounts)
		return nil
	},
}

func init() {
	discountsCmd.PersistentFlags().StringVar(&discountsAsOf, "as-of", "", "reference date (YYYY-MM-DD, defaults to today)")
	bestDiscountsCmd.Flags().IntVar(&discountsTop, "top", 3, "number of discounts to show")

	discountsCmd.AddCommand(bestDiscountsCmd, newDiscountsCmd, activeDiscountsCmd)
	rootCmd.AddCommand(discountsCmd)
}

func displayDiscounts(out io.Writer, discounts []catalog.Discount) {
	if len(discounts) == 0 {
		fmt.Fprintln(out, "No discounts")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tNAME\tSTORE\tDISCOUNT\tFROM\tTO")
	fmt.Fprintln(w, "-------\t----\t-----\t--------\t----\t--")
	for _, d := range discounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\t%s\t%s\n", d.ProductID, d.ProductName, d.StoreName, d.Percentage,
			d.FromDate.Format(catalog.DateLayout), d.ToDate.Format(catalog.DateLayout))
	}
	w.Flush()
}
