// Package bind maps tagged struct fields to argzx flags and back.
//
//	type Options struct {
//		Verbose bool   `argzx_flag:"verbose" argzx_description:"chatty output"`
//		Out     string `argzx_flag:"out" argzx_alias:"o"`
//		Jobs    int    `argzx_flag:"jobs"`
//	}
//
// The field's current value is the flag default.
package bind

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/TheGrizzlyDev/argzx/internal/pkg/argzx"
)

// Flags derives flag declarations from the tagged fields of v.
func Flags(v any) ([]argzx.Flag, error) {
	if err := ValidateTags(v); err != nil {
		return nil, err
	}

	var (
		flags []argzx.Flag
		err   error
	)
	walkStruct(reflect.ValueOf(v), false, func(sf reflect.StructField, fv reflect.Value) {
		name, ok := sf.Tag.Lookup(tagFlag)
		if !ok || err != nil {
			return
		}
		name = strings.TrimSpace(name)
		desc := sf.Tag.Get(tagDescription)
		var aliases []string
		if spec, ok := sf.Tag.Lookup(tagAlias); ok {
			for _, a := range strings.Split(spec, "|") {
				aliases = append(aliases, strings.TrimSpace(a))
			}
		}

		for fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				fv = reflect.New(fv.Type().Elem()).Elem()
				continue
			}
			fv = fv.Elem()
		}

		k, _ := kindOf(sf.Type)
		switch k {
		case kindBool:
			flags = append(flags, argzx.BoolFlag{Name: name, Default: fv.Bool(), Aliases: aliases, Description: desc})
		case kindString:
			flags = append(flags, argzx.StringFlag{Name: name, Default: fv.String(), Aliases: aliases, Description: desc})
		case kindNumber:
			n, nerr := numberOf(fv)
			if nerr != nil {
				err = fmt.Errorf("%s: %w", sf.Name, nerr)
				return
			}
			flags = append(flags, argzx.NumberFlag{Name: name, Default: n, Aliases: aliases, Description: desc})
		}
	})
	if err != nil {
		return nil, err
	}
	return flags, nil
}

// Decode stores res into the tagged fields of v, which must be a non-nil
// pointer to a struct. Number flags hold raw strings in res; they are
// converted to the field's type here. An untouched number flag still holds
// its float64 default and leaves the field as it is.
func Decode(res argzx.Results, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("Decode: want non-nil pointer, got %T", v)
	}
	if err := ValidateTags(v); err != nil {
		return err
	}

	var err error
	walkStruct(rv, true, func(sf reflect.StructField, fv reflect.Value) {
		if err != nil {
			return
		}
		name, ok := sf.Tag.Lookup(tagFlag)
		if !ok {
			return
		}
		val, ok := res.Get(strings.TrimSpace(name))
		if !ok {
			return
		}
		if _, untouched := val.(float64); untouched {
			return
		}
		if serr := setValue(fv, val); serr != nil {
			err = fmt.Errorf("%s: %w", sf.Name, serr)
		}
	})
	return err
}

// maxExactInt is the largest magnitude a float64 holds without losing
// integer precision.
const maxExactInt = 1 << 53

func numberOf(v reflect.Value) (float64, error) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if n > maxExactInt || n < -maxExactInt {
			return 0, fmt.Errorf("default %d cannot be represented exactly", n)
		}
		return float64(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := v.Uint()
		if n > maxExactInt {
			return 0, fmt.Errorf("default %d cannot be represented exactly", n)
		}
		return float64(n), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	}
	return 0, nil
}

func setValue(v reflect.Value, val any) error {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Bool:
		b, ok := val.(bool)
		if !ok {
			return fmt.Errorf("value %#v is not a boolean", val)
		}
		v.SetBool(b)
		return nil
	case reflect.String:
		s, ok := val.(string)
		if !ok {
			return fmt.Errorf("value %#v is not a string", val)
		}
		v.SetString(s)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		switch x := val.(type) {
		case string:
			p, err := strconv.ParseInt(x, 10, 64)
			if err != nil {
				return err
			}
			n = p
		case float64:
			if x != math.Trunc(x) {
				return fmt.Errorf("value %v is not an integer", x)
			}
			if x < -(1<<63) || x >= 1<<63 {
				return fmt.Errorf("value %v overflows field of type %s", x, v.Type())
			}
			n = int64(x)
		default:
			return fmt.Errorf("value %#v is not a number", val)
		}
		if v.OverflowInt(n) {
			return fmt.Errorf("value %v overflows field of type %s", val, v.Type())
		}
		v.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var n uint64
		switch x := val.(type) {
		case string:
			p, err := strconv.ParseUint(x, 10, 64)
			if err != nil {
				return err
			}
			n = p
		case float64:
			if x < 0 || x != math.Trunc(x) {
				return fmt.Errorf("value %v is not an unsigned integer", x)
			}
			if x >= 1<<64 {
				return fmt.Errorf("value %v overflows field of type %s", x, v.Type())
			}
			n = uint64(x)
		default:
			return fmt.Errorf("value %#v is not a number", val)
		}
		if v.OverflowUint(n) {
			return fmt.Errorf("value %v overflows field of type %s", val, v.Type())
		}
		v.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		var f float64
		switch x := val.(type) {
		case string:
			p, err := strconv.ParseFloat(x, v.Type().Bits())
			if err != nil {
				return err
			}
			f = p
		case float64:
			f = x
		default:
			return fmt.Errorf("value %#v is not a number", val)
		}
		if v.OverflowFloat(f) {
			return fmt.Errorf("value %v overflows field of type %s", val, v.Type())
		}
		v.SetFloat(f)
		return nil
	}
	return fmt.Errorf("unsupported field kind %s", v.Kind())
}
