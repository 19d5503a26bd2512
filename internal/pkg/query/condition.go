package query

import (
	"fmt"
	"strings"
)

// Condition is one WHERE clause fragment. Implementations emit SQL with
// Spanner named parameters (@pN); paramIndex keeps the generated names
// unique across the whole statement.
type Condition interface {
	SQL(paramIndex int) (string, map[string]interface{})
}

type cmpCondition struct {
	field string
	op    string
	value interface{}
}

func (c *cmpCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("%s %s @%s", c.field, c.op, name),
		map[string]interface{}{name: c.value}
}

// Eq creates "field = @pN".
func Eq(field string, value interface{}) Condition {
	return &cmpCondition{field: field, op: "=", value: value}
}

// Lte creates "field <= @pN".
func Lte(field string, value interface{}) Condition {
	return &cmpCondition{field: field, op: "<=", value: value}
}

// Gte creates "field >= @pN".
func Gte(field string, value interface{}) Condition {
	return &cmpCondition{field: field, op: ">=", value: value}
}

type inUnnestCondition struct {
	field string
	value interface{}
}

func (c *inUnnestCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := fmt.Sprintf("p%d", paramIndex)
	return fmt.Sprintf("@%s IN UNNEST(%s)", name, c.field),
		map[string]interface{}{name: c.value}
}

// InUnnest creates "@pN IN UNNEST(field)" for membership tests against
// an ARRAY column.
func InUnnest(field string, value interface{}) Condition {
	return &inUnnestCondition{field: field, value: value}
}

type isNullCondition struct {
	field string
}

func (c *isNullCondition) SQL(int) (string, map[string]interface{}) {
	return c.field + " IS NULL", map[string]interface{}{}
}

// IsNull creates "field IS NULL".
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

type orCondition struct {
	conditions []Condition
}

func (c *orCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	parts := make([]string, 0, len(c.conditions))
	params := make(map[string]interface{})
	for _, cond := range c.conditions {
		fragment, condParams := cond.SQL(paramIndex)
		parts = append(parts, fragment)
		for k, v := range condParams {
			params[k] = v
		}
		paramIndex += len(condParams)
	}
	return "(" + strings.Join(parts, " OR ") + ")", params
}

// Or combines conditions with OR inside one parenthesized group.
func Or(conditions ...Condition) Condition {
	return &orCondition{conditions: conditions}
}
