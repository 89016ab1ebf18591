// layout/schema.go
package layout

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSchema decodes a YAML (or JSON, which is a YAML subset) schema
// document. Unknown fields are ignored; value typing is validated lazily by
// the grammar at resolve time, per the permissive-fallback policy.
func LoadSchema(r io.Reader) (Schema, error) {
	var schema Schema
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&schema); err != nil {
		return Schema{}, fmt.Errorf("decoding layout schema: %w", err)
	}
	return schema, nil
}

// LoadSchemaFile reads a schema document from disk.
func LoadSchemaFile(path string) (Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return Schema{}, fmt.Errorf("opening layout schema %s: %w", path, err)
	}
	defer f.Close()
	return LoadSchema(f)
}
