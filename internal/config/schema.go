package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// configSchema is the JSON Schema for timer configuration documents.
// Structural checks live here; cross-field rules (quantile ordering, knob
// applicability per kind) live in ValidateConfig.
const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["timers"],
  "properties": {
    "timers": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "observer": {"enum": ["average", "stddev", "histogram", "hdr"]},
          "quantiles": {
            "type": "array",
            "items": {"type": "number", "minimum": 0, "maximum": 1}
          },
          "markers": {"type": "integer", "minimum": 5},
          "sigfigs": {"type": "integer", "minimum": 1, "maximum": 5},
          "threadSafe": {"type": "boolean"}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

var compiledSchema = func() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.json", strings.NewReader(configSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("config.json")
}()

// ValidateSchema checks a JSON configuration document against the embedded
// schema before unmarshalling.
func ValidateSchema(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("config schema violation: %w", err)
	}
	return nil
}
