package decl

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed decl.schema.json
var schemaData []byte

var compiled *jsonschema.Schema

func init() {
	var err error
	compiled, err = jsonschema.CompileString("decl.schema.json", string(schemaData))
	if err != nil {
		panic(fmt.Errorf("compile declaration schema: %w", err))
	}
}

// Validate checks a JSON declaration document against the schema.
func Validate(data []byte) error {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode declarations: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("validate declarations: %w", err)
	}
	return nil
}
