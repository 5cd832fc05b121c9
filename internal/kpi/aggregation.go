package kpi

import (
	"fmt"
	"strings"
)

// AggregationKind selects how team rows are folded into a league-level value
type AggregationKind int

const (
	Average AggregationKind = iota
	Total
)

func (a AggregationKind) String() string {
	switch a {
	case Average:
		return "avg"
	case Total:
		return "total"
	default:
		return fmt.Sprintf("AggregationKind(%d)", int(a))
	}
}

// SQLFunc returns the SQL aggregate function for the kind
func (a AggregationKind) SQLFunc() string {
	if a == Total {
		return "SUM"
	}
	return "AVG"
}

// ParseAggregationKind accepts "avg"/"average" and "total"/"sum", case-insensitively.
func ParseAggregationKind(s string) (AggregationKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avg", "average":
		return Average, nil
	case "total", "sum":
		return Total, nil
	}
	return Average, fmt.Errorf("%w: %q", ErrUnknownAggregation, s)
}
