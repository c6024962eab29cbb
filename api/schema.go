package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jrsteele09/go-authlete/enum"
)

// responseSchema is checked against a response body before it is decoded.
type responseSchema struct {
	schema *gojsonschema.Schema
}

// actionSchema requires an "action" member whose value is one of the set's wire strings.
func actionSchema[T enum.Integer](set *enum.Set[T]) responseSchema {
	return mustSchema(map[string]any{
		"type":     "object",
		"required": []string{"action"},
		"properties": map[string]any{
			"action": map[string]any{
				"type": "string",
				"enum": set.WireList(set.Values()),
			},
		},
	})
}

// requiredIntegerSchema requires a numeric member, e.g. "clientId" on a client.
func requiredIntegerSchema(field string) responseSchema {
	return mustSchema(map[string]any{
		"type":     "object",
		"required": []string{field},
		"properties": map[string]any{
			field: map[string]any{"type": "integer"},
		},
	})
}

// objectSchema only requires a JSON object.
func objectSchema() responseSchema {
	return mustSchema(map[string]any{"type": "object"})
}

func mustSchema(doc map[string]any) responseSchema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("invalid response schema: %v", err))
	}
	return responseSchema{schema: schema}
}

func (s responseSchema) validate(body []byte) error {
	if s.schema == nil {
		return nil
	}
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return errors.New("schema validation failed: " + strings.Join(msgs, "; "))
}
