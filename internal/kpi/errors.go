package kpi

import "errors"

var (
	// ErrPrimaryRequired is returned when the primary series has no usable values.
	ErrPrimaryRequired = errors.New("primary series required and non-empty")

	// ErrDuplicateSeries is returned when two series passed to Analyze share a name.
	ErrDuplicateSeries = errors.New("duplicate series name")

	// ErrUnknownKPI is returned for a KPI name outside the match-stat catalogue.
	ErrUnknownKPI = errors.New("unknown kpi")

	// ErrUnknownAggregation is returned when an aggregation kind cannot be parsed.
	ErrUnknownAggregation = errors.New("unknown aggregation kind")
)
