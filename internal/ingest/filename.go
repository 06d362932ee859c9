package ingest

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/kosarica/price-comparator/internal/catalog"
	"github.com/kosarica/price-comparator/internal/types"
)

const discountsMarker = "_discounts_"

// FileSpec describes a price or discount file identified from its name:
// <store>_<YYYY-MM-DD>.<ext> or <store>_discounts_<YYYY-MM-DD>.<ext>.
type FileSpec struct {
	Key   string
	Store string
	Date  time.Time
	Kind  types.FileKind
	Type  types.FileType
}

// ParseFileName identifies a storage key as a price or discount file.
func ParseFileName(key string) (FileSpec, error) {
	base := path.Base(key)
	ext := strings.ToLower(path.Ext(base))

	spec := FileSpec{Key: key}
	switch ext {
	case ".csv":
		spec.Type = types.FileTypeCSV
	case ".xlsx":
		spec.Type = types.FileTypeXLSX
	default:
		return FileSpec{}, fmt.Errorf("%s: unsupported file extension %q", key, ext)
	}

	stem := strings.TrimSuffix(base, base[len(base)-len(ext):])
	var datePart string
	if i := strings.LastIndex(stem, discountsMarker); i > 0 {
		spec.Kind = types.FileKindDiscounts
		spec.Store = stem[:i]
		datePart = stem[i+len(discountsMarker):]
	} else if i := strings.LastIndex(stem, "_"); i > 0 {
		spec.Kind = types.FileKindPrices
		spec.Store = stem[:i]
		datePart = stem[i+1:]
	} else {
		return FileSpec{}, fmt.Errorf("%s: expected <store>_<date> or <store>_discounts_<date>", key)
	}

	spec.Store = strings.TrimSpace(spec.Store)
	if spec.Store == "" {
		return FileSpec{}, fmt.Errorf("%s: empty store name", key)
	}

	date, err := catalog.ParseDate(datePart)
	if err != nil {
		return FileSpec{}, fmt.Errorf("%s: %w", key, err)
	}
	spec.Date = date
	return spec, nil
}
