package telemetry

import (
	"fmt"
	"io"
	"time"
)

// TimingCollector records stage durations in start order.
type TimingCollector struct {
	stages []*stage
}

type stage struct {
	name     string
	start    time.Time
	duration time.Duration
}

// NewTimingCollector creates an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start implements Collector.
func (c *TimingCollector) Start(name string) Timer {
	s := &stage{name: name, start: time.Now()}
	c.stages = append(c.stages, s)
	return s
}

// Report writes one line per recorded stage.
func (c *TimingCollector) Report(w io.Writer) {
	nameWidth := 0
	for _, s := range c.stages {
		if len(s.name) > nameWidth {
			nameWidth = len(s.name)
		}
	}
	for _, s := range c.stages {
		_, _ = fmt.Fprintf(w, "%-*s  %s\n", nameWidth, s.name, formatDuration(s.duration))
	}
}

// End implements Timer.
func (s *stage) End() {
	s.duration = time.Since(s.start)
}

// formatDuration renders a duration at millisecond-friendly precision.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fµs", float64(d.Microseconds()))
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
