package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const priceHeader = "product_id;product_name;product_category;brand;package_quantity;package_unit;price;currency\n"

const discountHeader = "product_id;product_name;brand;package_quantity;package_unit;product_category;from_date;to_date;percentage_of_discount\n"

func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"lidl_2025-05-01.csv": priceHeader +
			"P001;lapte zuzu;lactate;Zuzu;1;l;9.90;RON\n" +
			"P002;lapte napolact;lactate;Napolact;500;ml;4.00;RON\n",
		"profi_2025-05-01.csv": priceHeader +
			"P001;lapte zuzu;lactate;Zuzu;1;l;9.50;RON\n",
		"profi_discounts_2025-05-01.csv": discountHeader +
			"P001;lapte zuzu;Zuzu;1;l;lactate;2025-05-01;2025-05-07;15\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PRICE_COMPARATOR_DATABASE_URL", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI(t *testing.T) {
	dir := writeDataDir(t)

	t.Run("ingest", func(t *testing.T) {
		out, err := runCLI(t, "--data-dir", dir, "ingest")
		require.NoError(t, err)
		assert.Contains(t, out, "lidl_2025-05-01.csv")
		assert.Contains(t, out, "3 snapshots, 1 discounts inserted, 0 rows rejected")
	})

	t.Run("compare", func(t *testing.T) {
		out, err := runCLI(t, "--data-dir", dir, "compare", "P001", "--as-of", "2025-05-02")
		require.NoError(t, err)
		assert.Less(t, bytes.Index([]byte(out), []byte("profi")), bytes.Index([]byte(out), []byte("lidl")))
		assert.Contains(t, out, "9.50")
	})

	t.Run("compare unknown", func(t *testing.T) {
		out, err := runCLI(t, "--data-dir", dir, "compare", "NOPE", "--as-of", "")
		require.NoError(t, err)
		assert.Contains(t, out, "No prices for NOPE")
	})

	t.Run("best discounts", func(t *testing.T) {
		out, err := runCLI(t, "--data-dir", dir, "discounts", "best", "--as-of", "2025-05-03", "--top", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "15%")
	})

	t.Run("bad as-of", func(t *testing.T) {
		_, err := runCLI(t, "--data-dir", dir, "discounts", "active", "--as-of", "05/03/2025")
		assert.Error(t, err)
	})

	t.Run("basket", func(t *testing.T) {
		out, err := runCLI(t, "--data-dir", dir, "basket", "P001,P002", "NOPE")
		require.NoError(t, err)
		assert.Contains(t, out, "2 of 3 items, total 13.50")
	})

	t.Run("check", func(t *testing.T) {
		out, err := runCLI(t, "--data-dir", dir, "alerts", "check", "P001", "9.6")
		require.NoError(t, err)
		assert.Contains(t, out, "P001 is at or below 9.60")
	})
}
