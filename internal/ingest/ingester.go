// Package ingest loads price and discount files from storage into a catalog sink.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/kosarica/price-comparator/internal/catalog"
	"github.com/kosarica/price-comparator/internal/parsers/csv"
	"github.com/kosarica/price-comparator/internal/parsers/xlsx"
	"github.com/kosarica/price-comparator/internal/storage"
	"github.com/kosarica/price-comparator/internal/types"
)

const maxRecordedRowErrors = 50

// FileResult summarizes one ingested file
type FileResult struct {
	Key       string                `json:"key"`
	Store     string                `json:"store"`
	Date      string                `json:"date"`
	Kind      types.FileKind        `json:"kind"`
	Status    types.IngestionStatus `json:"status"`
	Checksum  string                `json:"checksum,omitempty"`
	Rows      int                   `json:"rows"`
	Inserted  int                   `json:"inserted"`
	Rejected  int                   `json:"rejected"`
	RowErrors []types.ParseError    `json:"rowErrors,omitempty"`
	Error     string                `json:"error,omitempty"`

	snapshots []catalog.PriceSnapshot
	discounts []catalog.Discount
}

// Summary is the outcome of an ingestion run
type Summary struct {
	Files             []*FileResult `json:"files"`
	SnapshotsInserted int           `json:"snapshotsInserted"`
	DiscountsInserted int           `json:"discountsInserted"`
	RowsRejected      int           `json:"rowsRejected"`
	Duration          time.Duration `json:"duration"`
}

// Ingester reads files from storage, parses them concurrently and applies them
// to the sink in key order so repeated runs produce the same catalog.
type Ingester struct {
	storage     storage.Storage
	sink        catalog.Sink
	concurrency int
	logger      zerolog.Logger
}

// NewIngester creates an ingester. concurrency bounds parallel file parsing.
func NewIngester(store storage.Storage, sink catalog.Sink, concurrency int) *Ingester {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Ingester{
		storage:     store,
		sink:        sink,
		concurrency: concurrency,
		logger:      log.With().Str("component", "ingester").Logger(),
	}
}

// Run ingests every recognized file under prefix. Unrecognized names are skipped,
// malformed rows are logged and skipped, and a file that cannot be read or
// parsed is marked failed without stopping the run. Only sink errors abort.
func (i *Ingester) Run(ctx context.Context, prefix string) (*Summary, error) {
	start := time.Now()
	defer func() { recordRun(time.Since(start)) }()

	keys, err := i.storage.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	specs := make([]FileSpec, 0, len(keys))
	for _, key := range keys {
		spec, err := ParseFileName(key)
		if err != nil {
			i.logger.Debug().Err(err).Str("key", key).Msg("Skipping unrecognized file")
			continue
		}
		specs = append(specs, spec)
	}

	i.logger.Info().Int("files", len(specs)).Str("prefix", prefix).Msg("Starting ingestion")

	results := make([]*FileResult, len(specs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)
	for idx, spec := range specs {
		idx, spec := idx, spec
		g.Go(func() error {
			results[idx] = i.parseFile(gctx, spec)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ingestion cancelled: %w", err)
	}

	summary := &Summary{Files: results}
	for _, res := range results {
		if err := i.apply(ctx, res); err != nil {
			return summary, err
		}
		switch res.Kind {
		case types.FileKindPrices:
			summary.SnapshotsInserted += res.Inserted
		case types.FileKindDiscounts:
			summary.DiscountsInserted += res.Inserted
		}
		summary.RowsRejected += res.Rejected
	}
	summary.Duration = time.Since(start)

	i.logger.Info().
		Int("files", len(results)).
		Int("snapshots", summary.SnapshotsInserted).
		Int("discounts", summary.DiscountsInserted).
		Int("rejected_rows", summary.RowsRejected).
		Dur("duration", summary.Duration).
		Msg("Ingestion completed")

	return summary, nil
}

// parseFile reads and maps one file. Failures are recorded on the result.
func (i *Ingester) parseFile(ctx context.Context, spec FileSpec) *FileResult {
	res := &FileResult{
		Key:   spec.Key,
		Store: spec.Store,
		Date:  spec.Date.Format(catalog.DateLayout),
		Kind:  spec.Kind,
	}
	logger := i.logger.With().Str("key", spec.Key).Str("kind", string(spec.Kind)).Logger()

	content, err := i.storage.Get(ctx, spec.Key)
	if err != nil {
		return i.fail(res, logger, err)
	}
	res.Checksum = storage.ComputeChecksum(content)

	var parsed *types.ParseResult
	switch spec.Type {
	case types.FileTypeXLSX:
		parsed, err = xlsx.NewParser(xlsx.DefaultOptions()).Parse(content)
	default:
		parsed, err = csv.NewParser(csv.DefaultOptions()).Parse(content)
	}
	if err != nil {
		return i.fail(res, logger, err)
	}

	res.Rows = parsed.TotalRows
	for _, rec := range parsed.Records {
		var rowErr error
		switch spec.Kind {
		case types.FileKindDiscounts:
			var d catalog.Discount
			if d, rowErr = toDiscount(spec, rec); rowErr == nil {
				res.discounts = append(res.discounts, d)
			}
		default:
			var s catalog.PriceSnapshot
			if s, rowErr = toSnapshot(spec, rec); rowErr == nil {
				res.snapshots = append(res.snapshots, s)
			}
		}
		if rowErr != nil {
			i.reject(res, logger, rec, rowErr)
		}
	}
	recordRows(string(spec.Kind), "rejected", res.Rejected)
	return res
}

func (i *Ingester) reject(res *FileResult, logger zerolog.Logger, rec types.RawRecord, err error) {
	res.Rejected++
	logger.Warn().Int("row", rec.RowNumber).Err(err).Msg("Skipping malformed row")
	if len(res.RowErrors) >= maxRecordedRowErrors {
		return
	}

	parseErr := types.ParseError{RowNumber: types.IntPtr(rec.RowNumber), Message: err.Error()}
	var re *RowError
	if errors.As(err, &re) {
		parseErr.Field = types.StringPtr(re.Field)
		parseErr.Message = re.Message
	}
	res.RowErrors = append(res.RowErrors, parseErr)
}

func (i *Ingester) fail(res *FileResult, logger zerolog.Logger, err error) *FileResult {
	res.Status = types.StatusFailed
	res.Error = err.Error()
	logger.Error().Err(err).Msg("Failed to read price file")
	return res
}

// apply writes a parsed file to the sink.
func (i *Ingester) apply(ctx context.Context, res *FileResult) error {
	kind := string(res.Kind)
	if res.Status == types.StatusFailed {
		recordFile(kind, string(types.StatusFailed))
		return nil
	}

	var (
		valid int
		err   error
	)
	switch res.Kind {
	case types.FileKindDiscounts:
		valid = len(res.discounts)
		res.Inserted, err = i.sink.AddDiscounts(ctx, res.discounts)
	default:
		valid = len(res.snapshots)
		res.Inserted, err = i.sink.AddSnapshots(ctx, res.snapshots)
	}
	res.snapshots, res.discounts = nil, nil
	if err != nil {
		recordFile(kind, string(types.StatusFailed))
		return fmt.Errorf("failed to store %s: %w", res.Key, err)
	}

	res.Status = types.StatusCompleted
	if res.Inserted == 0 && valid > 0 {
		res.Status = types.StatusSkipped
	}
	recordFile(kind, string(res.Status))
	recordRows(kind, "stored", res.Inserted)
	recordRows(kind, "duplicate", valid-res.Inserted)

	i.logger.Debug().
		Str("key", res.Key).
		Int("rows", res.Rows).
		Int("inserted", res.Inserted).
		Int("rejected", res.Rejected).
		Msg("Price file applied")
	return nil
}
