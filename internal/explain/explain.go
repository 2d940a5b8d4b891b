// Package explain builds the ranked, capped list of factors behind a
// decision, for human consumption.
package explain

import (
	"math"
	"sort"
)

// #region types

// maxReasons caps the ranked output.
const maxReasons = 3

// Reason is one contributing factor with its impact weight.
type Reason struct {
	Factor string  `json:"factor"`
	Impact float64 `json:"impact"`
}

// Explanation is the ranked factor list plus an aggregate confidence.
type Explanation struct {
	Reasons    []Reason `json:"reasons"`
	Confidence float64  `json:"confidence"`
}

// #endregion types

// #region build

// Build accumulates weighted reasons from the raw engagement numbers.
// sessionLengthSec is the representative session length for the record.
// When nothing triggers, a single healthy-engagement reason stands in so the
// output is never empty.
func Build(deaths int, sessionLengthSec float64, retries int) Explanation {
	var reasons []Reason

	if deaths > 3 {
		reasons = append(reasons, Reason{
			Factor: "high death count",
			Impact: math.Min(0.4, float64(deaths)/10),
		})
	}
	if sessionLengthSec < 120 {
		reasons = append(reasons, Reason{
			Factor: "short session length",
			Impact: math.Min(0.3, (120-sessionLengthSec)/120),
		})
	}
	if retries > 2 {
		reasons = append(reasons, Reason{
			Factor: "repeated retries",
			Impact: math.Min(0.2, float64(retries)/5),
		})
	}

	if len(reasons) == 0 {
		reasons = append(reasons, Reason{Factor: "healthy engagement", Impact: 0.1})
	}

	var total float64
	for _, r := range reasons {
		total += r.Impact
	}

	// Stable sort keeps insertion order on equal impacts.
	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Impact > reasons[j].Impact
	})
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return Explanation{
		Reasons:    reasons,
		Confidence: math.Round(math.Min(1, 0.4+total)*100) / 100,
	}
}

// #endregion build
