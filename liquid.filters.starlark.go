package liquid

import (
	"fmt"
	"sort"
	"strings"

	"go.starlark.net/starlark"

	"github.com/itsatony/go-liquid/internal"
)

const starlarkThreadName = "liquid-filter"

// NewStarlarkFilters executes a Starlark script and returns one filter per
// top-level callable whose name does not start with an underscore. The
// filter input is the first positional argument, filter arguments follow.
//
//	def shout(s, suffix = "!"):
//	    return s.upper() + suffix
//
// src may be a string, []byte or io.Reader; when nil the file is read from
// filename. Script globals are frozen, so the returned set may be used by
// concurrent renders.
func NewStarlarkFilters(filename string, src any) (FilterSet, error) {
	thread := &starlark.Thread{Name: starlarkThreadName}
	globals, err := starlark.ExecFile(thread, filename, src, nil)
	if err != nil {
		return nil, NewConfigError(subject(ErrMsgScriptLoad, filename), err)
	}
	globals.Freeze()

	set := make(FilterSet)
	for name, value := range globals {
		fn, ok := value.(starlark.Callable)
		if !ok || strings.HasPrefix(name, "_") {
			continue
		}
		set[name] = starlarkFilter(fn)
	}
	return set, nil
}

func starlarkFilter(fn starlark.Callable) FilterFunc {
	return func(input any, args ...any) (any, error) {
		callArgs := make(starlark.Tuple, 0, len(args)+1)
		for _, v := range append([]any{input}, args...) {
			sv, err := toStarlark(v)
			if err != nil {
				return nil, err
			}
			callArgs = append(callArgs, sv)
		}

		thread := &starlark.Thread{Name: starlarkThreadName}
		result, err := starlark.Call(thread, fn, callArgs, nil)
		if err != nil {
			return nil, fmt.Errorf(FmtErrorSubject, ErrMsgScriptExec, err)
		}
		return fromStarlark(result)
	}
}

func toStarlark(v any) (starlark.Value, error) {
	switch x := v.(type) {
	case nil:
		return starlark.None, nil
	case starlark.Value:
		return x, nil
	case string:
		return starlark.String(x), nil
	case bool:
		return starlark.Bool(x), nil
	case int:
		return starlark.MakeInt(x), nil
	case int32:
		return starlark.MakeInt64(int64(x)), nil
	case int64:
		return starlark.MakeInt64(x), nil
	case uint:
		return starlark.MakeUint(x), nil
	case uint64:
		return starlark.MakeUint64(x), nil
	case float32:
		return starlark.Float(x), nil
	case float64:
		return starlark.Float(x), nil
	case map[string]any:
		dict := starlark.NewDict(len(x))
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sv, err := toStarlark(x[k])
			if err != nil {
				return nil, err
			}
			if err := dict.SetKey(starlark.String(k), sv); err != nil {
				return nil, err
			}
		}
		return dict, nil
	}

	if items, ok := internal.Sequence(v); ok && internal.IsList(v) {
		list := make([]starlark.Value, len(items))
		for i, item := range items {
			sv, err := toStarlark(item)
			if err != nil {
				return nil, err
			}
			list[i] = sv
		}
		return starlark.NewList(list), nil
	}
	return starlark.String(internal.ToString(v)), nil
}

func fromStarlark(v starlark.Value) (any, error) {
	switch x := v.(type) {
	case nil, starlark.NoneType:
		return nil, nil
	case starlark.String:
		return string(x), nil
	case starlark.Bool:
		return bool(x), nil
	case starlark.Int:
		if i, ok := x.Int64(); ok {
			return int(i), nil
		}
		return x.String(), nil
	case starlark.Float:
		return float64(x), nil
	case *starlark.List:
		return fromStarlarkIterable(x, x.Len())
	case starlark.Tuple:
		return fromStarlarkIterable(x, x.Len())
	case *starlark.Dict:
		out := make(map[string]any, x.Len())
		for _, item := range x.Items() {
			key := item[0].String()
			if s, ok := item[0].(starlark.String); ok {
				key = string(s)
			}
			value, err := fromStarlark(item[1])
			if err != nil {
				return nil, err
			}
			out[key] = value
		}
		return out, nil
	}
	return nil, fmt.Errorf(FmtErrorSubject, ErrMsgScriptUnsupported, v.Type())
}

func fromStarlarkIterable(it starlark.Indexable, n int) (any, error) {
	out := make([]any, n)
	for i := 0; i < n; i++ {
		value, err := fromStarlark(it.Index(i))
		if err != nil {
			return nil, err
		}
		out[i] = value
	}
	return out, nil
}
