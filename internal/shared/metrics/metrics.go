package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	planStartedTotal   atomic.Uint64
	planCompletedTotal atomic.Uint64
	planFailedTotal    atomic.Uint64

	planJobsReceivedTotal  atomic.Uint64
	planJobsCompletedTotal atomic.Uint64
	planJobsFailedTotal    atomic.Uint64
	planJobsDroppedTotal   atomic.Uint64

	planDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncPlanJobsReceived increments the queue jobs received counter.
func IncPlanJobsReceived() {
	planJobsReceivedTotal.Add(1)
}

// IncPlanJobsCompleted increments the queue jobs completed counter.
func IncPlanJobsCompleted() {
	planJobsCompletedTotal.Add(1)
}

// IncPlanJobsFailed increments the queue jobs failed counter.
func IncPlanJobsFailed() {
	planJobsFailedTotal.Add(1)
}

// IncPlanJobsDroppedUnrecoverable increments the counter for malformed
// messages deleted without processing.
func IncPlanJobsDroppedUnrecoverable() {
	planJobsDroppedTotal.Add(1)
}

// IncPlanStarted increments the started counter.
func IncPlanStarted() {
	planStartedTotal.Add(1)
}

// IncPlanCompleted increments the completed counter.
func IncPlanCompleted() {
	planCompletedTotal.Add(1)
}

// IncPlanFailed increments the failed counter.
func IncPlanFailed() {
	planFailedTotal.Add(1)
}

// ObservePlanDurationMs records a plan generation duration in milliseconds.
func ObservePlanDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	planDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "plan_generation_started_total", "Total plan generations started", planStartedTotal.Load())
	writeCounter(&buf, "plan_generation_completed_total", "Total plan generations completed", planCompletedTotal.Load())
	writeCounter(&buf, "plan_generation_failed_total", "Total plan generations failed", planFailedTotal.Load())
	writeCounter(&buf, "plan_jobs_received_total", "Total plan jobs received from the queue", planJobsReceivedTotal.Load())
	writeCounter(&buf, "plan_jobs_completed_total", "Total plan jobs completed and deleted", planJobsCompletedTotal.Load())
	writeCounter(&buf, "plan_jobs_failed_total", "Total plan jobs that failed processing", planJobsFailedTotal.Load())
	writeCounter(&buf, "plan_jobs_dropped_total", "Total malformed plan jobs deleted unprocessed", planJobsDroppedTotal.Load())
	writeHistogram(&buf, "plan_generation_duration_ms", "Plan generation duration in milliseconds", planDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
