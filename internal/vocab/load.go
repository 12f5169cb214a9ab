package vocab

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultSchemaPath is the repo-relative location of the vocabulary JSON schema.
const DefaultSchemaPath = "schemas/vocabulary.schema.json"

// Load reads a vocabulary table file from disk, validates it against the
// vocabulary schema when schemaPath is non-empty, and compiles its patterns.
// Validation is skipped with no error if the schema file cannot be found;
// a schema violation or an uncompilable pattern is a hard error.
func Load(path, schemaPath string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	if schemaPath != "" {
		if resolved := ResolveSchemaPath(schemaPath); resolved != "" {
			if err := ValidateAgainstSchema(resolved, data); err != nil {
				return nil, err
			}
		}
	}

	var file tableFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	tables, err := file.compile()
	if err != nil {
		return nil, fmt.Errorf("vocabulary file %s: %w", path, err)
	}

	return tables, nil
}
