package provision

import (
	"embed"
	"fmt"
	"strings"

	"search-provisioner/core/search"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var schemaFiles = map[search.ResourceKind]string{
	search.KindDataSource: "schemas/datasource.json",
	search.KindIndex:      "schemas/index.json",
	search.KindIndexer:    "schemas/indexer.json",
}

// ValidateDocument checks a built document against the embedded JSON Schema
// for its resource kind. A violation means the builder and the wire contract
// have drifted apart; it is reported as a ConfigurationError before any
// network call is made.
func ValidateDocument(kind search.ResourceKind, doc any) error {
	file, ok := schemaFiles[kind]
	if !ok {
		return configErr("schema", "no schema registered for resource kind %q", kind)
	}

	data, err := schemaFS.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", file, err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(data), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation for %s failed to run: %w", kind, err)
	}

	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			violations = append(violations, desc.String())
		}
		return configErr(string(kind), "document violates schema: %s", strings.Join(violations, "; "))
	}

	return nil
}
