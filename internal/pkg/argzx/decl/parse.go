// Package decl loads flag declarations from JSON files.
package decl

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/TheGrizzlyDev/argzx/internal/pkg/argzx"
)

// Load reads and parses the declaration file at path.
func Load(path string) ([]argzx.Flag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read declarations: %w", err)
	}
	return Parse(data)
}

// Parse validates data and converts every entry to a typed flag. The JSON
// type of "default" decides the kind: boolean, string, or number.
func Parse(data []byte) ([]argzx.Flag, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	var decls []Declaration
	if err := json.Unmarshal(data, &decls); err != nil {
		return nil, fmt.Errorf("unmarshal declarations: %w", err)
	}

	flags := make([]argzx.Flag, 0, len(decls))
	for i, d := range decls {
		f, err := d.Flag()
		if err != nil {
			return nil, fmt.Errorf("declaration %d (%q): %w", i, d.Name, err)
		}
		flags = append(flags, f)
	}
	return flags, nil
}

// Flag converts d into the argzx flag matching its default's JSON type.
func (d Declaration) Flag() (argzx.Flag, error) {
	var raw any
	if err := json.Unmarshal(d.Default, &raw); err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}
	switch v := raw.(type) {
	case bool:
		return argzx.BoolFlag{Name: d.Name, Default: v, Aliases: d.Alias, Description: d.Description}, nil
	case string:
		return argzx.StringFlag{Name: d.Name, Default: v, Aliases: d.Alias, Description: d.Description}, nil
	case float64:
		return argzx.NumberFlag{Name: d.Name, Default: v, Aliases: d.Alias, Description: d.Description}, nil
	}
	return nil, fmt.Errorf("unsupported default type %T", raw)
}
