package dataset

import "strconv"

// ValueKind tags a metric value as numeric, text, or undefined
type ValueKind int

const (
	ValueNumeric ValueKind = iota
	ValueText
	ValueUndefined
)

// UndefinedText is the serialized form of an undefined metric value
const UndefinedText = "NaN"

// MetricValue is a tagged metric value. The engine keeps values typed so
// callers can reason about numeric ordering; conversion to text happens only
// at the persistence boundary.
type MetricValue struct {
	Kind ValueKind
	Num  float64
	Text string
}

// Numeric creates a numeric metric value
func Numeric(v float64) MetricValue {
	return MetricValue{Kind: ValueNumeric, Num: v}
}

// Count creates a numeric metric value from an integer count
func Count(n int) MetricValue {
	return MetricValue{Kind: ValueNumeric, Num: float64(n)}
}

// Text creates a textual metric value
func Text(s string) MetricValue {
	return MetricValue{Kind: ValueText, Text: s}
}

// Undefined creates the sentinel value for metrics that cannot be computed
func Undefined() MetricValue {
	return MetricValue{Kind: ValueUndefined}
}

// IsUndefined reports whether the value is the undefined sentinel
func (v MetricValue) IsUndefined() bool {
	return v.Kind == ValueUndefined
}

// String serializes the value for persistence
func (v MetricValue) String() string {
	switch v.Kind {
	case ValueNumeric:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case ValueText:
		return v.Text
	default:
		return UndefinedText
	}
}
