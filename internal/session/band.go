package session

import "fmt"

// Band is a qualitative tier derived from a percentage score.
type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMid:
		return "mid"
	case BandHigh:
		return "high"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// Message returns the encouragement shown alongside a score in this band.
func (b Band) Message() string {
	switch b {
	case BandHigh:
		return "Great job!"
	case BandMid:
		return "Good effort, keep practicing!"
	default:
		return "Review your weak areas"
	}
}

// Default band thresholds, in percent.
const (
	DefaultHighThreshold = 70
	DefaultMidThreshold  = 50
)

// Bands is the threshold table mapping percentages to bands. A percentage
// at or above High is BandHigh, at or above Mid is BandMid, otherwise BandLow.
type Bands struct {
	High int
	Mid  int
}

// DefaultBands returns the standard 70/50 threshold table.
func DefaultBands() Bands {
	return Bands{High: DefaultHighThreshold, Mid: DefaultMidThreshold}
}

// Validate checks that 0 <= Mid <= High <= 100.
func (b Bands) Validate() error {
	if b.Mid < 0 || b.High > 100 || b.Mid > b.High {
		return fmt.Errorf("invalid band thresholds: need 0 <= mid (%d) <= high (%d) <= 100", b.Mid, b.High)
	}
	return nil
}

// Classify returns the band for pct.
func (b Bands) Classify(pct int) Band {
	switch {
	case pct >= b.High:
		return BandHigh
	case pct >= b.Mid:
		return BandMid
	default:
		return BandLow
	}
}

// Percentage returns 100*part/total rounded to the nearest integer, with
// halves rounded up. A non-positive total yields 0.
func Percentage(part, total int) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}
