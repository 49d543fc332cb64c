package auditlog

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"
	"unicode/utf8"

	"gorm.io/datatypes"
)

// MaxSnapshotDepth bounds how far Snapshot descends into nested values.
const MaxSnapshotDepth = 6

const (
	depthMarker    = "[max depth]"
	circularMarker = "[circular]"
)

var (
	timeType      = reflect.TypeOf(time.Time{})
	marshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
)

// Snapshot renders v as JSON for a log entry. Nesting beyond
// MaxSnapshotDepth is replaced by a marker and reference cycles are cut,
// so an entity graph with back-references can always be stored.
// A nil v yields a nil document.
func Snapshot(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	plain := toPlain(reflect.ValueOf(v), 0, map[uintptr]bool{})
	if plain == nil {
		return nil
	}
	b, err := json.Marshal(plain)
	if err != nil {
		b, _ = json.Marshal(map[string]string{"snapshot_error": err.Error()})
	}
	return datatypes.JSON(b)
}

func toPlain(v reflect.Value, depth int, visiting map[uintptr]bool) interface{} {
	if !v.IsValid() {
		return nil
	}
	if depth > MaxSnapshotDepth {
		return depthMarker
	}

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		addr := v.Pointer()
		if visiting[addr] {
			return circularMarker
		}
		visiting[addr] = true
		defer delete(visiting, addr)
		return toPlain(v.Elem(), depth, visiting)

	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return toPlain(v.Elem(), depth, visiting)

	case reflect.Struct:
		if v.Type() == timeType {
			return v.Interface().(time.Time).Format(time.RFC3339Nano)
		}
		return structToMap(v, depth, visiting)

	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		addr := v.Pointer()
		if visiting[addr] {
			return circularMarker
		}
		visiting[addr] = true
		defer delete(visiting, addr)

		out := make(map[string]interface{}, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = toPlain(iter.Value(), depth+1, visiting)
		}
		return out

	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		if raw, ok := rawJSON(v); ok {
			return raw
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return string(v.Bytes())
		}
		if v.Len() > 0 {
			addr := v.Pointer()
			if visiting[addr] {
				return circularMarker
			}
			visiting[addr] = true
			defer delete(visiting, addr)
		}
		return sliceToList(v, depth, visiting)

	case reflect.Array:
		return sliceToList(v, depth, visiting)

	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return nil

	default:
		return v.Interface()
	}
}

func structToMap(v reflect.Value, depth int, visiting map[uintptr]bool) map[string]interface{} {
	out := make(map[string]interface{})
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag := field.Tag.Get("json"); tag != "" {
			if tag == "-" {
				continue
			}
			if n := tagName(tag); n != "" {
				name = n
			}
		}
		fv := v.Field(i)
		if field.Anonymous && fv.Kind() == reflect.Struct && fv.Type() != timeType {
			for k, val := range structToMap(fv, depth, visiting) {
				out[k] = val
			}
			continue
		}
		out[name] = toPlain(fv, depth+1, visiting)
	}
	return out
}

func sliceToList(v reflect.Value, depth int, visiting map[uintptr]bool) []interface{} {
	out := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = toPlain(v.Index(i), depth+1, visiting)
	}
	return out
}

// rawJSON decodes byte-slice types that already hold JSON (datatypes.JSON).
func rawJSON(v reflect.Value) (interface{}, bool) {
	if !v.Type().Implements(marshalerType) || v.Type().Elem().Kind() != reflect.Uint8 {
		return nil, false
	}
	b := v.Bytes()
	if len(b) == 0 {
		return nil, true
	}
	var decoded interface{}
	if err := json.Unmarshal(b, &decoded); err != nil {
		return string(b), true
	}
	return decoded, true
}

func tagName(tag string) string {
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i]
		}
	}
	return tag
}

// Truncate shortens s to at most max bytes without splitting a rune.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
