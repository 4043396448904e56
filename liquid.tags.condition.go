package liquid

import (
	"fmt"
	"regexp"

	"github.com/itsatony/go-liquid/internal"
)

var conditionSyntax = regexp.MustCompile(patternCondition)

var comparisonOperators = map[string]bool{
	OpEqual:        true,
	OpNotEqual:     true,
	OpGreater:      true,
	OpLess:         true,
	OpGreaterEqual: true,
	OpLessEqual:    true,
}

// Condition is a single comparison, or a truthiness test when Operator is
// empty. Left and Right are unresolved expressions.
type Condition struct {
	Left     string
	Operator string
	Right    string
}

// parseCondition reads "left [op right]" markup. ok is false when the
// markup does not have that shape; an unsupported operator is an error.
func parseCondition(markup, tagName string, pos Position) (Condition, bool, error) {
	m := conditionSyntax.FindStringSubmatch(markup)
	if m == nil || (m[2] == "") != (m[3] == "") {
		return Condition{}, false, nil
	}
	if m[2] != "" && !comparisonOperators[m[2]] {
		return Condition{}, false, NewUnknownOperatorError(m[2], tagName, pos)
	}
	return Condition{Left: m[1], Operator: m[2], Right: m[3]}, true, nil
}

// Evaluate resolves both operands and applies the operator
func (c Condition) Evaluate(ctx *Context) (bool, error) {
	if c.Operator == "" {
		v, err := comparable(c.Left, ctx.Get(c.Left))
		if err != nil {
			return false, err
		}
		return internal.IsTruthy(v), nil
	}

	leftValue := ctx.Get(c.Left)
	rightValue := ctx.Get(c.Right)

	var left, right any
	switch {
	case c.Right == KeywordEmpty && internal.IsList(leftValue):
		left, right = internal.Length(leftValue), 0
	case c.Left == KeywordEmpty && internal.IsList(rightValue):
		left, right = 0, internal.Length(rightValue)
	default:
		var err error
		if left, err = comparable(c.Left, leftValue); err != nil {
			return false, err
		}
		if right, err = comparable(c.Right, rightValue); err != nil {
			return false, err
		}
	}
	return compareValues(left, right, c.Operator), nil
}

// comparable coerces a resolved operand: drops must provide a string form
// and lists always compare as true.
func comparable(expr string, v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Drop, ContextDrop:
		s, ok := x.(fmt.Stringer)
		if !ok {
			return nil, NewNotComparableError(expr, v)
		}
		return s.String(), nil
	}
	if internal.IsList(v) {
		return true, nil
	}
	return v, nil
}

// compareValues applies op. Absent operands are only equal to each other
// and unequal to everything else; ordering an absent operand is false.
func compareValues(left, right any, op string) bool {
	if left == nil || right == nil {
		bothAbsent := left == nil && right == nil
		switch op {
		case OpEqual:
			return bothAbsent
		case OpNotEqual:
			return !bothAbsent
		default:
			return false
		}
	}

	switch op {
	case OpEqual:
		return internal.Equal(left, right)
	case OpNotEqual:
		return !internal.Equal(left, right)
	case OpGreater:
		return internal.Compare(left, right) > 0
	case OpLess:
		return internal.Compare(left, right) < 0
	case OpGreaterEqual:
		return internal.Compare(left, right) >= 0
	case OpLessEqual:
		return internal.Compare(left, right) <= 0
	}
	return false
}
