package bind

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

const (
	tagFlag        = "argzx_flag"
	tagAlias       = "argzx_alias"
	tagDescription = "argzx_description"
	tagEmbed       = "argzx_embed"
)

// ValidateTags checks the argzx tags on v, a struct or pointer to struct, and
// reports every problem found in a single error.
func ValidateTags(v any) error {
	if v == nil {
		return errors.New("ValidateTags: nil value")
	}
	rv := reflect.ValueOf(v)
	typ := rv.Type()
	st := typ
	for st.Kind() == reflect.Pointer {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return fmt.Errorf("ValidateTags: %s is not a struct", typ)
	}

	var errs []string
	seen := map[string]string{}
	walkStruct(rv, false, func(sf reflect.StructField, fv reflect.Value) {
		name, hasFlag := sf.Tag.Lookup(tagFlag)
		aliasSpec, hasAlias := sf.Tag.Lookup(tagAlias)
		_, hasDesc := sf.Tag.Lookup(tagDescription)

		if !hasFlag {
			if hasAlias || hasDesc {
				errs = append(errs, fmt.Sprintf("%s: field %q has argzx_alias or argzx_description but no argzx_flag", typ, sf.Name))
			}
			return
		}

		name = strings.TrimSpace(name)
		if name == "" {
			errs = append(errs, fmt.Sprintf("%s: field %q has empty argzx_flag", typ, sf.Name))
		} else if prev, ok := seen[name]; ok {
			errs = append(errs, fmt.Sprintf("%s: fields %q and %q both declare flag %q", typ, prev, sf.Name, name))
		} else {
			seen[name] = sf.Name
		}

		if _, ok := kindOf(sf.Type); !ok {
			errs = append(errs, fmt.Sprintf("%s: field %q (flag %q) has unsupported type %s", typ, sf.Name, name, sf.Type))
		}

		if hasAlias {
			for _, a := range strings.Split(aliasSpec, "|") {
				if strings.TrimSpace(a) == "" {
					errs = append(errs, fmt.Sprintf("%s: field %q has empty argzx_alias entry", typ, sf.Name))
				}
			}
		}
	})

	if len(errs) > 0 {
		return errors.New("ValidateTags:\n  - " + strings.Join(errs, "\n  - "))
	}
	return nil
}

type flagKind int

const (
	kindBool flagKind = iota
	kindString
	kindNumber
)

func kindOf(t reflect.Type) (flagKind, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return kindBool, true
	case reflect.String:
		return kindString, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return kindNumber, true
	}
	return 0, false
}
