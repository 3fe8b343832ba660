package bind

import "reflect"

// walkStruct visits every exported, non-embedded field of v. Anonymous
// structs and fields tagged argzx_embed are flattened into their parent.
// With alloc set, nil embedded pointers are allocated so their fields can be
// written; otherwise a zero value is walked for its tags only.
func walkStruct(v reflect.Value, alloc bool, visit func(sf reflect.StructField, fv reflect.Value)) {
	if !v.IsValid() {
		return
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v = reflect.New(v.Type().Elem()).Elem()
		} else {
			v = v.Elem()
		}
	}
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		fv := v.Field(i)

		_, embed := sf.Tag.Lookup(tagEmbed)
		if sf.Anonymous || embed {
			switch fv.Kind() {
			case reflect.Struct:
				walkStruct(fv, alloc, visit)
				continue
			case reflect.Pointer:
				if fv.Type().Elem().Kind() != reflect.Struct {
					break
				}
				if fv.IsNil() && alloc && fv.CanSet() {
					fv.Set(reflect.New(fv.Type().Elem()))
				}
				walkStruct(fv, alloc, visit)
				continue
			}
		}

		visit(sf, fv)
	}
}
