package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGroupSchema(t *testing.T) {
	for _, group := range schemaGroups() {
		schema := generateGroupSchema(group)
		defs, ok := schema["$defs"].(map[string]any)
		require.True(t, ok, group.Name)
		assert.NotEmpty(t, defs, group.Name)
	}

	analysisSchema := generateGroupSchema(schemaGroups()[1])
	defs := analysisSchema["$defs"].(map[string]any)
	for _, name := range []string{"BasketRequest", "BasketResponse", "Offer", "PriceSnapshot"} {
		assert.Contains(t, defs, name)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generate(dir))

	for _, name := range []string{"catalog.json", "analysis.json", "ingestion.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal(data, &parsed), name)
		assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", parsed["$schema"])
	}
}
