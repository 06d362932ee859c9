package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/kosarica/price-comparator/internal/ingest"
	"github.com/kosarica/price-comparator/internal/types"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest [prefix]",
	Short: "Load price and discount files into the catalog",
	Long: `Load every recognized price and discount file from the data directory
into the catalog. Files already loaded are skipped, malformed rows are reported
and skipped. With an in-memory catalog this only validates the files.`,
	Example: `  price-comparator ingest
  price-comparator ingest --data-dir ./data lidl_`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}

	logger.Info().Str("data_dir", cfg.Data.Dir).Str("prefix", prefix).Msg("Starting ingestion")
	summary, err := backend.Ingester().Run(cmd.Context(), prefix)
	if summary != nil {
		displayIngestResults(cmd.OutOrStdout(), summary)
	}
	if err != nil {
		return err
	}

	for _, f := range summary.Files {
		if f.Status == types.StatusFailed {
			return fmt.Errorf("some files failed to load")
		}
	}
	return nil
}

func displayIngestResults(out io.Writer, summary *ingest.Summary) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "FILE\tKIND\tSTATUS\tROWS\tINSERTED\tREJECTED")
	fmt.Fprintln(w, "----\t----\t------\t----\t--------\t--------")

	for _, f := range summary.Files {
		status := string(f.Status)
		if status == "" {
			status = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n", f.Key, f.Kind, status, f.Rows, f.Inserted, f.Rejected)
	}
	w.Flush()

	fmt.Fprintf(out, "\n%d snapshots, %d discounts inserted, %d rows rejected in %s\n",
		summary.SnapshotsInserted, summary.DiscountsInserted, summary.RowsRejected, summary.Duration.Round(time.Millisecond))
}
