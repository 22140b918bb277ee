package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/belm0/perf-timer/stats"
)

// FormatReport returns the one-line synopsis for a timer's summary, shaped
// by observer kind:
//
//	timer "foo": avg 11.9 ms, max 12.8 ms in 10 runs
//	timer "foo": avg 11.9 ms ± 961 µs, max 12.8 ms in 10 runs
//	timer "foo": avg 11.9ms ± 961µs, 50% ≤ 12.6ms, 90% ≤ 12.7ms in 10 runs
//
// A single observation prints only its duration:
//
//	timer "foo": 11.9 ms
func FormatReport(name string, s stats.Summary) string {
	return renderReport(name, s, NoColorScheme())
}

// Renderer renders timer reports with a color scheme.
type Renderer struct {
	Scheme *ColorScheme
}

// NewRenderer returns a renderer using the given scheme; nil means no color.
func NewRenderer(scheme *ColorScheme) *Renderer {
	if scheme == nil {
		scheme = NoColorScheme()
	}
	return &Renderer{Scheme: scheme}
}

// Report returns the colored one-line synopsis for a timer's summary.
func (r *Renderer) Report(name string, s stats.Summary) string {
	return renderReport(name, s, r.Scheme)
}

func renderReport(name string, s stats.Summary, scheme *ColorScheme) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("timer %s: ", scheme.Name.Sprintf("%q", name)))

	mean := s.Mean.Seconds()
	if s.Count == 1 {
		b.WriteString(scheme.Value.Sprint(FormatSeconds(mean, DefaultPrecision, " ")))
		return b.String()
	}

	switch s.Kind {
	case stats.KindAverage:
		b.WriteString(fmt.Sprintf("avg %s, max %s",
			scheme.Value.Sprint(FormatSeconds(mean, DefaultPrecision, " ")),
			scheme.Value.Sprint(FormatSeconds(s.Max.Seconds(), DefaultPrecision, " "))))
	case stats.KindStdDev:
		b.WriteString(fmt.Sprintf("avg %s ± %s, max %s",
			scheme.Value.Sprint(FormatSeconds(mean, DefaultPrecision, " ")),
			scheme.Value.Sprint(FormatSeconds(s.StdDev.Seconds(), DefaultPrecision, " ")),
			scheme.Value.Sprint(FormatSeconds(s.Max.Seconds(), DefaultPrecision, " "))))
	default:
		// Quantile-tracking kinds use the compact unit form.
		b.WriteString(fmt.Sprintf("avg %s ± %s",
			scheme.Value.Sprint(FormatSeconds(mean, DefaultPrecision, "")),
			scheme.Value.Sprint(FormatSeconds(s.StdDev.Seconds(), DefaultPrecision, ""))))
		for _, qv := range s.Quantiles {
			b.WriteString(fmt.Sprintf(", %.0f%% ≤ %s", qv.Q*100,
				scheme.Value.Sprint(FormatSeconds(qv.Value.Seconds(), DefaultPrecision, ""))))
		}
	}

	b.WriteString(fmt.Sprintf(" in %s runs", scheme.Count.Sprintf("%d", s.Count)))
	return b.String()
}

// NamedSummary pairs a timer name with its summary for JSON output.
type NamedSummary struct {
	Name string `json:"name"`
	stats.Summary
}

// MarshalSummaries returns the JSON encoding of a set of timer summaries.
func MarshalSummaries(summaries []NamedSummary) ([]byte, error) {
	return json.MarshalIndent(summaries, "", "  ")
}

// Extract returns the value at a gjson path within JSON data, for
// machine-readable report filtering (e.g. "0.quantiles.1.value").
func Extract(data []byte, path string) (string, error) {
	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return "", fmt.Errorf("no value at path %q", path)
	}
	return result.String(), nil
}
