package config

import "fmt"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Path is the path to the invalid field
	Path string

	// Message describes the validation error
	Message string
}

// Error returns the error message.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidateConfig validates the configuration semantically and returns a
// slice of validation errors. An empty slice indicates the configuration is
// valid.
func ValidateConfig(config *Config) []ValidationError {
	var errors []ValidationError

	if len(config.Timers) == 0 {
		errors = append(errors, ValidationError{
			Path:    "timers",
			Message: "at least one timer is required",
		})
	}

	seen := make(map[string]bool)
	for i, tc := range config.Timers {
		path := func(field string) string {
			return fmt.Sprintf("timers.%d.%s", i, field)
		}

		if tc.Name == "" {
			errors = append(errors, ValidationError{
				Path:    path("name"),
				Message: "name is required",
			})
		} else if seen[tc.Name] {
			errors = append(errors, ValidationError{
				Path:    path("name"),
				Message: fmt.Sprintf("duplicate timer name: %s", tc.Name),
			})
		}
		seen[tc.Name] = true

		kind := tc.Observer
		if kind == "" {
			kind = "stddev"
		}
		switch kind {
		case "average", "stddev":
			if len(tc.Quantiles) > 0 {
				errors = append(errors, ValidationError{
					Path:    path("quantiles"),
					Message: fmt.Sprintf("quantiles are not supported by the %s observer", kind),
				})
			}
		case "histogram", "hdr":
			if len(tc.Quantiles) == 0 {
				errors = append(errors, ValidationError{
					Path:    path("quantiles"),
					Message: fmt.Sprintf("the %s observer requires at least one quantile", kind),
				})
			}
			for j, q := range tc.Quantiles {
				if q < 0 || q > 1 {
					errors = append(errors, ValidationError{
						Path:    path(fmt.Sprintf("quantiles.%d", j)),
						Message: fmt.Sprintf("quantile must be in [0, 1], got %g", q),
					})
				}
				if j > 0 && tc.Quantiles[j-1] >= q {
					errors = append(errors, ValidationError{
						Path:    path(fmt.Sprintf("quantiles.%d", j)),
						Message: "quantiles must be monotonically increasing",
					})
				}
			}
		default:
			errors = append(errors, ValidationError{
				Path:    path("observer"),
				Message: fmt.Sprintf("unknown observer kind: %s", tc.Observer),
			})
		}

		if tc.Markers != 0 {
			if kind != "histogram" {
				errors = append(errors, ValidationError{
					Path:    path("markers"),
					Message: "markers applies only to the histogram observer",
				})
			} else if tc.Markers < 5 || tc.Markers%2 == 0 {
				errors = append(errors, ValidationError{
					Path:    path("markers"),
					Message: fmt.Sprintf("markers must be odd and >= 5, got %d", tc.Markers),
				})
			}
		}

		if tc.SigFigs != 0 {
			if kind != "hdr" {
				errors = append(errors, ValidationError{
					Path:    path("sigfigs"),
					Message: "sigfigs applies only to the hdr observer",
				})
			} else if tc.SigFigs < 1 || tc.SigFigs > 5 {
				errors = append(errors, ValidationError{
					Path:    path("sigfigs"),
					Message: fmt.Sprintf("sigfigs must be 1..5, got %d", tc.SigFigs),
				})
			}
		}
	}

	return errors
}
