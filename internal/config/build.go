package config

import (
	"fmt"

	"github.com/belm0/perf-timer/stats"
)

// BuildObserver constructs the observer a TimerConfig describes. The config
// is assumed validated; construction errors from the stats factories are
// still surfaced.
func BuildObserver(tc TimerConfig) (stats.Observer, error) {
	var (
		obs stats.Observer
		err error
	)

	switch tc.Observer {
	case "average":
		obs = stats.NewAverage()
	case "stddev", "":
		obs = stats.NewStdDev()
	case "histogram":
		var opts []stats.HistogramOption
		if tc.Markers != 0 {
			opts = append(opts, stats.WithMarkers(tc.Markers))
		}
		obs, err = stats.NewHistogram(tc.Quantiles, opts...)
	case "hdr":
		var opts []stats.HDROption
		if tc.SigFigs != 0 {
			opts = append(opts, stats.WithSignificantFigures(tc.SigFigs))
		}
		obs, err = stats.NewHDR(tc.Quantiles, opts...)
	default:
		return nil, fmt.Errorf("unknown observer kind: %s", tc.Observer)
	}
	if err != nil {
		return nil, fmt.Errorf("timer %q: %w", tc.Name, err)
	}

	if tc.ThreadSafe {
		obs = stats.NewLocked(obs)
	}
	return obs, nil
}
