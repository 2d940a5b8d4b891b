// Package validate enforces the DecisionInput contract before any
// derivation runs. Raw JSON is checked twice: once against the embedded
// JSON schema and once with typed field checks. The typed pass produces the
// field-level detail map so error messages stay deterministic.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danielpatrickdp/launchgate/internal/decision"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// #region schema

const inputSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["game_id", "player_id", "session_id"],
	"properties": {
		"game_id":    {"type": "string", "minLength": 1},
		"player_id":  {"type": "string", "minLength": 1},
		"session_id": {"type": "string", "minLength": 1},
		"playtime":   {"type": "number", "minimum": 0},
		"deaths":     {"type": "integer", "minimum": 0},
		"restarts":   {"type": "integer", "minimum": 0},
		"early_quit": {"type": "boolean"},
		"sessions": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {"duration_sec": {"type": "number", "minimum": 0}}
			}
		},
		"events": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {"type": {"type": "string"}}
			}
		}
	}
}`

var compiledSchema = jsonschema.MustCompileString("decision_input.schema.json", inputSchema)

// #endregion schema

// #region typed-checks

// Input runs the typed field checks on an already-decoded record. The
// returned map is empty when the record is valid.
func Input(in decision.Input) map[string]string {
	details := make(map[string]string)

	if strings.TrimSpace(in.GameID) == "" {
		details["game_id"] = "must be a non-empty identifier"
	}
	if strings.TrimSpace(in.PlayerID) == "" {
		details["player_id"] = "must be a non-empty identifier"
	}
	if strings.TrimSpace(in.SessionID) == "" {
		details["session_id"] = "must be a non-empty identifier"
	}
	if in.Playtime < 0 {
		details["playtime"] = "must be >= 0"
	}
	if in.Deaths < 0 {
		details["deaths"] = "must be a non-negative integer"
	}
	if in.Restarts < 0 {
		details["restarts"] = "must be a non-negative integer"
	}

	return details
}

// #endregion typed-checks

// #region json

// JSON decodes and validates a raw DecisionInput document. Both the schema
// and typed validators must pass; the detail map reports every violated
// field at once.
func JSON(raw []byte) (decision.Input, map[string]string, error) {
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return decision.Input{}, map[string]string{"_body": "not valid JSON"}, fmt.Errorf("decode input: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		// Schema failures that the typed pass cannot see (wrong types,
		// fractional counters) surface under a document-level key.
		in, details := decodeStrict(raw)
		if len(details) == 0 {
			details["_schema"] = err.Error()
		}
		return in, details, fmt.Errorf("input schema: %w", err)
	}

	in, details := decodeStrict(raw)
	if len(details) > 0 {
		return in, details, fmt.Errorf("input validation failed on %d field(s)", len(details))
	}
	return in, nil, nil
}

func decodeStrict(raw []byte) (decision.Input, map[string]string) {
	var in decision.Input
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&in); err != nil {
		return decision.Input{}, map[string]string{"_body": err.Error()}
	}
	return in, Input(in)
}

// #endregion json
