package telemetry

import "io"

// noOpCollector is returned by FromContext when no collector is configured.
type noOpCollector struct{}

func (noOpCollector) Start(string) Timer { return noOpTimer{} }
func (noOpCollector) Report(io.Writer)   {}

type noOpTimer struct{}

func (noOpTimer) End() {}
