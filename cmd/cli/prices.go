package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kosarica/price-comparator/internal/analysis"
	"github.com/kosarica/price-comparator/internal/catalog"
)

var (
	productsCategory string
	productsName     string
	compareAsOf      string
	historyStore     string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products, optionally filtered by category or name",
	Example: `  price-comparator products --category lactate
  price-comparator products --name paine`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		var (
			products []catalog.PriceSnapshot
			err      error
		)
		switch {
		case productsCategory != "":
			products, err = analyzer.ProductsByCategory(ctx, productsCategory)
		case productsName != "":
			products, err = analyzer.SearchProducts(ctx, productsName)
		default:
			products, err = backend.Catalog.Products(ctx)
		}
		if err != nil {
			return err
		}
		displaySnapshots(cmd.OutOrStdout(), products)
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <productId>",
	Short: "Compare a product's current price across stores, cheapest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			offers []analysis.Offer
			err    error
		)
		if compareAsOf != "" {
			asOf, perr := asOfFlag(compareAsOf)
			if perr != nil {
				return perr
			}
			offers, err = analyzer.ComparePricesAsOf(cmd.Context(), args[0], asOf)
		} else {
			offers, err = analyzer.CompareCurrentPrices(cmd.Context(), args[0])
		}
		if err != nil {
			return err
		}
		if len(offers) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No prices for %s\n", args[0])
			return nil
		}
		displayOffers(cmd.OutOrStdout(), offers)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <productId>",
	Short: "Show a product's price history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := analyzer.PriceHistory(cmd.Context(), args[0], historyStore)
		if err != nil {
			return err
		}
		displaySnapshots(cmd.OutOrStdout(), history)
		return nil
	},
}

var alternativeCmd = &cobra.Command{
	Use:   "alternative <productId>",
	Short: "Find a cheaper product per unit in the same category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alt, err := analyzer.BestValueAlternative(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if alt == nil {
			fmt.Fprintf(out, "No better value alternative for %s\n", args[0])
			return nil
		}
		fmt.Fprintf(out, "%s (%s) at %s: %.2f %s, %.2f %s/%s vs %.2f for %s\n",
			alt.ProductName, alt.ProductID, alt.Offer.StoreName, alt.Offer.Price, alt.Offer.Currency,
			alt.UnitPrice, alt.Offer.Currency, alt.Unit, alt.ReferenceUnitPrice, args[0])
		return nil
	},
}

func init() {
	productsCmd.Flags().StringVar(&productsCategory, "category", "", "category, case-insensitive")
	productsCmd.Flags().StringVar(&productsName, "name", "", "name fragment, ignores case and diacritics")
	compareCmd.Flags().StringVar(&compareAsOf, "as-of", "", "compare as of date (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyStore, "store", "", "restrict to one store")

	rootCmd.AddCommand(productsCmd, compareCmd, historyCmd, alternativeCmd)
}

func displayOffers(out io.Writer, offers []analysis.Offer) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "STORE\tPRICE\tCURRENCY\tDATE\tPACKAGE")
	fmt.Fprintln(w, "-----\t-----\t--------\t----\t-------")
	for _, o := range offers {
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\t%g %s\n", o.StoreName, o.Price, o.Currency,
			o.Snapshot.PriceDate.Format(catalog.DateLayout), o.Snapshot.PackageQuantity, o.Snapshot.PackageUnit)
	}
	w.Flush()
}

func displaySnapshots(out io.Writer, snapshots []catalog.PriceSnapshot) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tNAME\tCATEGORY\tSTORE\tDATE\tPRICE\tPACKAGE")
	fmt.Fprintln(w, "-------\t----\t--------\t-----\t----\t-----\t-------")
	for _, s := range snapshots {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f %s\t%g %s\n", s.ProductID, s.ProductName, s.Category, s.StoreName,
			s.PriceDate.Format(catalog.DateLayout), s.Price, s.Currency, s.PackageQuantity, s.PackageUnit)
	}
	w.Flush()
}
