package profiler

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				out[mf.GetName()] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[mf.GetName()] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				out[mf.GetName()] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return out
}

func TestTickRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewProfiler(WithRegisterer(reg), WithLogging(false), WithUpdateInterval(time.Hour))

	for range 5 {
		if p.Tick() {
			t.Fatal("Tick should not sample before the interval elapses")
		}
	}

	got := gather(t, reg)
	if got["orrery_frames_total"] != 5 {
		t.Fatalf("frames_total = %v, want 5", got["orrery_frames_total"])
	}
	if got["orrery_frame_seconds"] != 5 {
		t.Fatalf("frame_seconds samples = %v, want 5", got["orrery_frame_seconds"])
	}
}

func TestTickSamplesHeap(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewProfiler(WithRegisterer(reg), WithLogging(false), WithUpdateInterval(0))

	if !p.Tick() {
		t.Fatal("Tick should sample with a zero interval")
	}
	if got := gather(t, reg)["orrery_heap_bytes"]; got <= 0 {
		t.Fatalf("heap_bytes = %v, want > 0", got)
	}
}

func TestNilRegisterer(t *testing.T) {
	p := NewProfiler(WithRegisterer(nil), WithLogging(false))
	p.Tick()
}
