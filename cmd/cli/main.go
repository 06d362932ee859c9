package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kosarica/price-comparator/config"
	"github.com/kosarica/price-comparator/internal/analysis"
	"github.com/kosarica/price-comparator/internal/app"
	"github.com/kosarica/price-comparator/internal/catalog"
)

var (
	cfgFile string
	dataDir string
	cfg     *config.Config
	logger  *zerolog.Logger

	backend      *app.Backend
	analyzer     *analysis.Analyzer
	alertService *analysis.AlertService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "price-comparator",
	Short: "Price Comparator CLI - grocery price analysis tool",
	Long: `A CLI tool for comparing grocery prices across stores. It loads daily
price and discount files (<store>_<YYYY-MM-DD>.csv and
<store>_discounts_<YYYY-MM-DD>.csv, or .xlsx) and answers price comparison,
price history, discount, basket and price alert queries.

Without a configured database the data directory is loaded into memory on
every invocation.`,
	PersistentPreRunE: persistentPreRun,
	PersistentPostRun: persistentPostRun,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory with price files (overrides data.dir)")
}

// persistentPreRun loads config and opens the catalog before each command
func persistentPreRun(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}

	logger = initLogger(cmd.ErrOrStderr())

	ctx := cmd.Context()
	backend, err = app.Open(ctx, cfg)
	if err != nil {
		return err
	}

	// An in-memory catalog starts empty, so load the data directory first
	if !backend.Persistent && cmd.Name() != "ingest" {
		if _, err := backend.Ingester().Run(ctx, ""); err != nil {
			return fmt.Errorf("failed to load %s: %w", cfg.Data.Dir, err)
		}
	}

	analyzer = analysis.NewAnalyzer(backend.Catalog)
	alertService = analysis.NewAlertService(backend.Catalog, analyzer)
	return nil
}

func persistentPostRun(cmd *cobra.Command, args []string) {
	if backend != nil {
		backend.Close()
		backend = nil
	}
}

// initLogger logs to stderr so command output on stdout stays parseable
func initLogger(out io.Writer) *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.WarnLevel
	if cfg != nil && cfg.Logging.Level != "" && cfg.Logging.Level != "info" {
		if parsedLevel, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
			level = parsedLevel
		}
	}

	noColor := cfg != nil && cfg.Logging.NoColor
	l := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: noColor}).Level(level).With().Timestamp().Logger()
	log.Logger = l
	return &l
}

// asOfFlag parses a YYYY-MM-DD flag value, defaulting to today
func asOfFlag(value string) (time.Time, error) {
	if value == "" {
		return analyzer.Today(), nil
	}
	d, err := catalog.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q: expected YYYY-MM-DD", value)
	}
	return d, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
