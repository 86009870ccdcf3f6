package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// cmpCondition implements a binary comparison (field <op> value).
type cmpCondition struct {
	field string
	op    string
	value interface{}
}

func (c *cmpCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s %s @%s", c.field, c.op, paramName)
	params := map[string]interface{}{
		paramName: c.value,
	}
	return sql, params
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("status", "active") generates "status = @p0"
func Eq(field string, value interface{}) Condition {
	return &cmpCondition{field: field, op: "=", value: value}
}

// Gte creates a WHERE condition for >= comparison.
func Gte(field string, value interface{}) Condition {
	return &cmpCondition{field: field, op: ">=", value: value}
}

// Lte creates a WHERE condition for <= comparison.
func Lte(field string, value interface{}) Condition {
	return &cmpCondition{field: field, op: "<=", value: value}
}

// Between creates a WHERE condition for an inclusive range.
// Example: Between("rate_date", lo, hi) generates
// "rate_date BETWEEN @p0 AND @p1". Both bounds are inclusive, matching the
// calendar window semantics.
func Between(field string, lo, hi interface{}) Condition {
	return &betweenCondition{field: field, lo: lo, hi: hi}
}

type betweenCondition struct {
	field  string
	lo, hi interface{}
}

func (c *betweenCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	loName := fmt.Sprintf("p%d", paramIndex)
	hiName := fmt.Sprintf("p%d", paramIndex+1)
	sql := fmt.Sprintf("%s BETWEEN @%s AND @%s", c.field, loName, hiName)
	params := map[string]interface{}{
		loName: c.lo,
		hiName: c.hi,
	}
	return sql, params
}
