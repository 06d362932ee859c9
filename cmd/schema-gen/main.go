// Schema Generator
//
// Generates JSON Schema files for the HTTP API request and response types so
// API clients can validate payloads without reading Go source.
//
// Usage:
//
//	go run ./cmd/schema-gen [output-dir]
//
// Output (default ./schemas):
//
//	catalog.json
//	analysis.json
//	ingestion.json
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/kosarica/price-comparator/internal/analysis"
	"github.com/kosarica/price-comparator/internal/catalog"
	"github.com/kosarica/price-comparator/internal/handlers"
	"github.com/kosarica/price-comparator/internal/ingest"
)

// SchemaGroup represents a group of related schemas
type SchemaGroup struct {
	Name   string
	Types  []any
	Output string
}

func schemaGroups() []SchemaGroup {
	return []SchemaGroup{
		{
			Name: "catalog",
			Types: []any{
				catalog.PriceSnapshot{},
				catalog.Discount{},
				catalog.PriceAlert{},
				handlers.ProductsResponse{},
				handlers.ProductDetailsResponse{},
				handlers.HistoryResponse{},
				handlers.DiscountsResponse{},
			},
			Output: "catalog.json",
		},
		{
			Name: "analysis",
			Types: []any{
				// Request types
				handlers.BasketRequest{},
				handlers.CreateAlertRequest{},
				// Response types
				analysis.Offer{},
				analysis.Alternative{},
				handlers.CompareResponse{},
				handlers.StoreBasket{},
				handlers.BasketResponse{},
				handlers.AlertsResponse{},
				handlers.PriceCheckResponse{},
				handlers.ErrorResponse{},
			},
			Output: "analysis.json",
		},
		{
			Name: "ingestion",
			Types: []any{
				handlers.IngestRequest{},
				ingest.FileResult{},
				ingest.Summary{},
			},
			Output: "ingestion.json",
		},
	}
}

func main() {
	outputDir := "./schemas"
	if len(os.Args) > 1 {
		outputDir = os.Args[1]
	}

	if err := generate(outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Println("Schema generation complete!")
}

// generate writes one schema file per group into outputDir
func generate(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, group := range schemaGroups() {
		schema := generateGroupSchema(group)
		outputPath := filepath.Join(outputDir, group.Output)

		if err := writeSchema(schema, outputPath); err != nil {
			return fmt.Errorf("failed to write %s: %w", group.Output, err)
		}

		fmt.Printf("Generated %s\n", outputPath)
	}
	return nil
}

// generateGroupSchema creates a combined schema with all types in a group
func generateGroupSchema(group SchemaGroup) map[string]any {
	reflector := &jsonschema.Reflector{
		DoNotReference: false,
		ExpandedStruct: false,
	}

	// Create combined definitions
	definitions := make(map[string]any)

	for _, t := range group.Types {
		schema := reflector.Reflect(t)

		// Get the type name from the schema
		typeName := ""
		if schema.Ref != "" {
			// Extract type name from $ref like "#/$defs/Offer"
			typeName = filepath.Base(schema.Ref)
		}

		// Add all definitions from this type's schema
		for name, def := range schema.Definitions {
			definitions[name] = def
		}

		// If there's a main type, add it to definitions too
		if typeName != "" && schema.Definitions[typeName] != nil {
			definitions[typeName] = schema.Definitions[typeName]
		}
	}

	return map[string]any{
		"$schema":     "https://json-schema.org/draft/2020-12/schema",
		"$id":         fmt.Sprintf("https://price-comparator.local/schemas/%s.json", group.Name),
		"title":       fmt.Sprintf("%s API Types", capitalize(group.Name)),
		"description": fmt.Sprintf("JSON Schema for %s API types generated from Go structs", group.Name),
		"$defs":       definitions,
	}
}

// writeSchema writes a schema to a JSON file
func writeSchema(schema map[string]any, path string) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
