package liquid

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/itsatony/go-liquid/internal"
)

// StructTagName is the struct tag consulted when resolving struct fields
const StructTagName = "liquid"

// property reads one path segment from value. Maps are read by key, lists
// by index or by the size/first/last properties, structs by field, and
// drops through has/get/fallback. Context drops receive c with each read.
func (c *Context) property(value any, key string) any {
	switch v := value.(type) {
	case ContextDrop:
		if v.HasKey(key) {
			return v.GetContext(c, key)
		}
		if item, ok := dropListProperty(v, key); ok {
			return item
		}
		return v.FallbackContext(c, key)
	case Drop:
		if v.HasKey(key) {
			return v.Get(key)
		}
		if item, ok := dropListProperty(v, key); ok {
			return item
		}
		return v.Fallback(key)
	case map[string]any:
		if item, ok := v[key]; ok {
			return item
		}
		if key == internal.PropertySize {
			return len(v)
		}
		return nil
	case string:
		if key == internal.PropertySize {
			return internal.Length(v)
		}
		return nil
	}

	if internal.IsList(value) {
		item, _ := listProperty(value, key)
		return item
	}
	return reflectProperty(value, key)
}

// dropListProperty answers index and size/first/last reads on iterable drops
func dropListProperty(value any, key string) (any, bool) {
	if !internal.IsList(value) {
		return nil, false
	}
	return listProperty(value, key)
}

func listProperty(value any, key string) (any, bool) {
	items, _ := internal.Sequence(value)
	if idx, err := strconv.Atoi(key); err == nil {
		if idx < 0 {
			idx += len(items)
		}
		if idx < 0 || idx >= len(items) {
			return nil, true
		}
		return items[idx], true
	}
	switch key {
	case internal.PropertySize:
		return len(items), true
	case internal.PropertyFirst:
		if len(items) == 0 {
			return nil, true
		}
		return items[0], true
	case internal.PropertyLast:
		if len(items) == 0 {
			return nil, true
		}
		return items[len(items)-1], true
	}
	return nil, false
}

func reflectProperty(value any, key string) any {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		item := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !item.IsValid() {
			if key == internal.PropertySize {
				return rv.Len()
			}
			return nil
		}
		return item.Interface()
	case reflect.Struct:
		return structField(rv, key)
	}
	return nil
}

// structField matches key against the liquid struct tag, then the field
// name ignoring case and underscores.
func structField(rv reflect.Value, key string) any {
	t := rv.Type()
	folded := strings.ReplaceAll(key, "_", "")
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if tag, ok := f.Tag.Lookup(StructTagName); ok {
			if tag == key {
				return rv.Field(i).Interface()
			}
			continue
		}
		if strings.EqualFold(f.Name, folded) {
			return rv.Field(i).Interface()
		}
	}
	return nil
}
