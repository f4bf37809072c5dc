package analytics

import "math"

// TrendDirection classifies a metric's recent movement.
type TrendDirection string

const (
	TrendUp      TrendDirection = "up"
	TrendDown    TrendDirection = "down"
	TrendNeutral TrendDirection = "neutral"
)

// Trend is the classification of an ordered value sequence.
type Trend struct {
	Direction  TrendDirection `json:"direction"`
	Percentage float64        `json:"percentage"`
}

// ClassifyTrend compares the average of the most recent five points
// against the average of everything before that window. Above +5% is up,
// below -5% is down, anything in between is neutral; the percentage is
// reported as an absolute magnitude. Fewer than two points is neutral,
// as is a zero baseline, where relative change is undefined.
func ClassifyTrend(values []float64) Trend {
	if len(values) < 2 {
		return Trend{Direction: TrendNeutral, Percentage: 0}
	}

	recentN := len(values)
	if recentN > 5 {
		recentN = 5
	}
	recent := mean(values[len(values)-recentN:])

	olderN := len(values) - 5
	if olderN < 1 {
		olderN = 1
	}
	older := mean(values[:olderN])

	if older == 0 {
		return Trend{Direction: TrendNeutral, Percentage: 0}
	}
	pct := (recent - older) / older * 100

	direction := TrendNeutral
	switch {
	case pct > 5:
		direction = TrendUp
	case pct < -5:
		direction = TrendDown
	}
	return Trend{Direction: direction, Percentage: math.Abs(pct)}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
