package dataset

import "testing"

func TestMetricValue_String(t *testing.T) {
	cases := []struct {
		name     string
		value    MetricValue
		expected string
	}{
		{"numeric", Numeric(2.5), "2.5"},
		{"integer count", Count(5), "5"},
		{"whole float", Numeric(4), "4"},
		{"text", Text("Oslo"), "Oslo"},
		{"undefined", Undefined(), UndefinedText},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.value.String(); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestMetricRank(t *testing.T) {
	if MetricRank(MetricMissingCount) != 0 {
		t.Error("missing_count should rank first")
	}
	if MetricRank(MetricMode) != len(MetricOrder)-1 {
		t.Error("mode should rank last among known metrics")
	}
	if MetricRank("kurtosis") != len(MetricOrder) {
		t.Error("unknown metrics should rank after all known ones")
	}
}
