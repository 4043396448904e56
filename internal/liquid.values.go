package internal

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Iterable lets a host value expose an ordered sequence to loops and
// sequence filters without being a Go slice.
type Iterable interface {
	Items() []any
}

// ToString renders a value the way it appears in template output
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, FloatFormat, FloatPrecision, FloatBitSize)
	case fmt.Stringer:
		return x.String()
	}

	if IsList(v) {
		items, _ := Sequence(v)
		var sb strings.Builder
		for _, item := range items {
			sb.WriteString(ToString(item))
		}
		return sb.String()
	}

	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), FloatFormat, FloatPrecision, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), FloatFormat, FloatPrecision, FloatBitSize)
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	return fmt.Sprint(v)
}

// IsNumeric reports whether v has a Go number type
func IsNumeric(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.Indirect(reflect.ValueOf(v)).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// ToNumber converts numbers and numeric strings to float64
func ToNumber(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), FloatBitSize)
		return f, err == nil
	}
	return 0, false
}

// ToInt converts v to an int, truncating decimals
func ToInt(v any) (int, bool) {
	f, ok := ToNumber(v)
	return int(f), ok
}

// IsTruthy implements template truthiness: nil, false, the empty string
// and numeric zero are false; everything else, including empty lists, is true.
func IsTruthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	if IsNumeric(v) {
		f, _ := ToNumber(v)
		return f != 0
	}
	return true
}

// IsList reports whether v is an ordered sequence (slice, array or Iterable)
func IsList(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(Iterable); ok {
		return true
	}
	switch reflect.Indirect(reflect.ValueOf(v)).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// Sequence returns the elements of a list, or the sorted key/value pairs of
// a map. ok is false for scalars.
func Sequence(v any) ([]any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case []any:
		return x, true
	case Iterable:
		return x.Items(), true
	}

	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items, true
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return ToString(keys[i].Interface()) < ToString(keys[j].Interface())
		})
		items := make([]any, len(keys))
		for i, k := range keys {
			items[i] = map[string]any{
				PairKey:   k.Interface(),
				PairValue: rv.MapIndex(k).Interface(),
			}
		}
		return items, true
	}
	return nil, false
}

// Length returns the size of strings (in runes), lists and maps; other
// values are measured by their rendered form.
func Length(v any) int {
	switch x := v.(type) {
	case nil:
		return 0
	case string:
		return utf8.RuneCountInString(x)
	}
	if items, ok := Sequence(v); ok {
		return len(items)
	}
	return utf8.RuneCountInString(ToString(v))
}

// Equal compares two present values: numerically when either side is a
// number, by truthiness when either side is a bool, otherwise as strings.
func Equal(a, b any) bool {
	if IsNumeric(a) || IsNumeric(b) {
		an, aok := ToNumber(a)
		bn, bok := ToNumber(b)
		if aok && bok {
			return an == bn
		}
	}
	if ab, ok := a.(bool); ok {
		return ab == IsTruthy(b)
	}
	if bb, ok := b.(bool); ok {
		return bb == IsTruthy(a)
	}
	return ToString(a) == ToString(b)
}

// Compare orders two present values: numerically when both convert to
// numbers, otherwise by their string form.
func Compare(a, b any) int {
	an, aok := ToNumber(a)
	bn, bok := ToNumber(b)
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(ToString(a), ToString(b))
}
