package quiz

import "time"

// tickMsg drives the countdown. attempt ties the tick to the attempt that
// scheduled it so ticks from a discarded attempt are ignored.
type tickMsg struct {
	attempt string
	at      time.Time
}
