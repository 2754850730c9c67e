package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const bankSchemaURL = "https://codeorder.invalid/schemas/bank.schema.json"

// BankSchema is the JSON Schema every JSON question bank must satisfy.
const BankSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "minProperties": 1,
  "additionalProperties": {
    "type": "object",
    "additionalProperties": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question", "answers", "answer_divs", "correct_order"],
        "additionalProperties": false,
        "properties": {
          "question": { "type": "string" },
          "answers": { "type": "array", "minItems": 1, "items": { "type": "string" } },
          "answer_divs": { "type": "integer", "minimum": 1 },
          "correct_order": { "type": "array", "items": { "type": "integer", "minimum": 0 } }
        }
      }
    }
  }
}`

var (
	bankSchemaOnce sync.Once
	bankSchema     *jsonschema.Schema
	bankSchemaErr  error
)

func compiledBankSchema() (*jsonschema.Schema, error) {
	bankSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(bankSchemaURL, strings.NewReader(BankSchema)); err != nil {
			bankSchemaErr = fmt.Errorf("add bank schema: %w", err)
			return
		}
		bankSchema, bankSchemaErr = compiler.Compile(bankSchemaURL)
		if bankSchemaErr != nil {
			bankSchemaErr = fmt.Errorf("compile bank schema: %w", bankSchemaErr)
		}
	})
	return bankSchema, bankSchemaErr
}

// validateJSONSchema checks raw JSON bank data against BankSchema.
func validateJSONSchema(data []byte) error {
	schema, err := compiledBankSchema()
	if err != nil {
		return err
	}
	var value any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&value); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
