package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringer struct{ s string }

func (s stringer) String() string { return s.s }

type items []any

func (i items) Items() []any { return i }

func TestToString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "nil", input: nil, expected: ""},
		{name: "string", input: "abc", expected: "abc"},
		{name: "bool", input: true, expected: "true"},
		{name: "int", input: 42, expected: "42"},
		{name: "int64", input: int64(-3), expected: "-3"},
		{name: "uint8", input: uint8(7), expected: "7"},
		{name: "float", input: 2.5, expected: "2.5"},
		{name: "whole float", input: 3.0, expected: "3"},
		{name: "float32", input: float32(1.5), expected: "1.5"},
		{name: "stringer", input: stringer{s: "drop"}, expected: "drop"},
		{name: "slice", input: []any{"a", 1, nil, "b"}, expected: "a1b"},
		{name: "typed slice", input: []string{"x", "y"}, expected: "xy"},
		{name: "iterable", input: items{"p", "q"}, expected: "pq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToString(tt.input))
		})
	}
}

func TestToNumber(t *testing.T) {
	n, ok := ToNumber("  12.5 ")
	assert.True(t, ok)
	assert.Equal(t, 12.5, n)

	n, ok = ToNumber(uint16(9))
	assert.True(t, ok)
	assert.Equal(t, 9.0, n)

	_, ok = ToNumber("twelve")
	assert.False(t, ok)

	_, ok = ToNumber(nil)
	assert.False(t, ok)

	i, ok := ToInt(7.9)
	assert.True(t, ok)
	assert.Equal(t, 7, i)
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected bool
	}{
		{name: "nil", input: nil, expected: false},
		{name: "false", input: false, expected: false},
		{name: "true", input: true, expected: true},
		{name: "empty string", input: "", expected: false},
		{name: "string", input: "x", expected: true},
		{name: "zero", input: 0, expected: false},
		{name: "zero float", input: 0.0, expected: false},
		{name: "number", input: 3, expected: true},
		{name: "empty slice", input: []any{}, expected: true},
		{name: "map", input: map[string]any{}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTruthy(tt.input))
		})
	}
}

func TestSequence(t *testing.T) {
	seq, ok := Sequence([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, []any{1, 2, 3}, seq)

	seq, ok = Sequence([2]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, seq)

	seq, ok = Sequence(map[string]int{"b": 2, "a": 1})
	assert.True(t, ok)
	assert.Equal(t, []any{
		map[string]any{PairKey: "a", PairValue: 1},
		map[string]any{PairKey: "b", PairValue: 2},
	}, seq)

	seq, ok = Sequence(items{"x"})
	assert.True(t, ok)
	assert.Equal(t, []any{"x"}, seq)

	_, ok = Sequence("abc")
	assert.False(t, ok)
	_, ok = Sequence(nil)
	assert.False(t, ok)
}

func TestIsList(t *testing.T) {
	assert.True(t, IsList([]any{}))
	assert.True(t, IsList([]string{"a"}))
	assert.True(t, IsList(items{}))
	assert.False(t, IsList(map[string]any{}))
	assert.False(t, IsList("abc"))
	assert.False(t, IsList(nil))
}

func TestLength(t *testing.T) {
	assert.Equal(t, 0, Length(nil))
	assert.Equal(t, 3, Length("abc"))
	assert.Equal(t, 2, Length("äö"))
	assert.Equal(t, 4, Length(1000))
	assert.Equal(t, 2, Length([]any{1, 2}))
	assert.Equal(t, 1, Length(map[string]any{"a": 1}))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a        any
		b        any
		expected bool
	}{
		{name: "same strings", a: "x", b: "x", expected: true},
		{name: "different strings", a: "x", b: "y", expected: false},
		{name: "int and float", a: 1, b: 1.0, expected: true},
		{name: "int and numeric string", a: 2, b: "2", expected: true},
		{name: "int and word", a: 2, b: "two", expected: false},
		{name: "bool and truthy", a: true, b: "yes", expected: true},
		{name: "bool and falsy", a: false, b: "", expected: true},
		{name: "numeric strings compare as strings", a: "1.0", b: "1", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Equal(tt.a, tt.b))
		})
	}
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 1, Compare(10, 9))
	assert.Equal(t, 1, Compare("10", 9))
	assert.Equal(t, -1, Compare(1.5, 2))
	assert.Equal(t, 0, Compare(3, "3"))
	assert.Equal(t, -1, Compare("apple", "banana"))
}
