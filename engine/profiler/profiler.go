package profiler

import (
	"log"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval and mirrors them into
// Prometheus collectors so they can be scraped.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	lastFrame      time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	logging        bool

	registerer   prometheus.Registerer
	framesTotal  prometheus.Counter
	frameSeconds prometheus.Histogram
	heapBytes    prometheus.Gauge
}

// NewProfiler creates a new Profiler and registers its collectors.
// Update interval defaults to 1 second and collectors go to prometheus.DefaultRegisterer.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	now := time.Now()
	p := &Profiler{
		lastTime:       now,
		lastFrame:      now,
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		logging:        true,
		registerer:     prometheus.DefaultRegisterer,
	}
	for _, option := range options {
		option(p)
	}

	p.framesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orrery_frames_total",
		Help: "Total number of frames rendered",
	})
	p.frameSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orrery_frame_seconds",
		Help:    "Wall time between consecutive frames",
		Buckets: []float64{0.004, 0.008, 0.0167, 0.033, 0.05, 0.1, 0.25},
	})
	p.heapBytes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orrery_heap_bytes",
		Help: "Bytes of allocated heap objects at the last sample",
	})

	if p.registerer != nil {
		p.registerer.MustRegister(p.framesTotal, p.frameSeconds, p.heapBytes)
	}
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were sampled this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()

	p.framesTotal.Inc()
	p.frameSeconds.Observe(currentTime.Sub(p.lastFrame).Seconds())
	p.lastFrame = currentTime

	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	p.heapBytes.Set(float64(p.memStats.Alloc))

	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 GC pauses
	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	if p.logging {
		log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			fps, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)
	}

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
