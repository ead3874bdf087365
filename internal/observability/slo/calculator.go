package slo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	requestsMetric = "http_requests_total"
	durationMetric = "http_request_duration_seconds"
)

// Calculator periodically derives the SLO gauges from the request counters
// and latency histogram already collected by the HTTP middleware.
type Calculator struct {
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// NewCalculator returns a calculator reading from the default registry.
func NewCalculator(logger *slog.Logger) *Calculator {
	return &Calculator{
		Gatherer: prometheus.DefaultGatherer,
		Logger:   logger,
	}
}

// Run refreshes the SLO gauges on the given interval until ctx is canceled.
func (c *Calculator) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Refresh(); err != nil {
				c.Logger.Warn("slo refresh failed", slog.Any("error", err))
			}
		}
	}
}

// Refresh recomputes availability, error rate, and latency percentiles from
// the current metric state. Gauges keep their previous value when no traffic
// has been recorded yet.
func (c *Calculator) Refresh() error {
	families, err := c.Gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather: %w", err)
	}

	var total, serverErrors float64
	var histogram *dto.Histogram

	for _, family := range families {
		switch family.GetName() {
		case requestsMetric:
			for _, m := range family.GetMetric() {
				value := m.GetCounter().GetValue()
				total += value
				if hasServerErrorStatus(m.GetLabel()) {
					serverErrors += value
				}
			}
		case durationMetric:
			histogram = mergeHistograms(family.GetMetric())
		}
	}

	if total > 0 {
		UpdateAvailability((total - serverErrors) / total)
		UpdateErrorRate(serverErrors / total)
	}
	if histogram != nil && histogram.GetSampleCount() > 0 {
		UpdateLatencyP95(quantile(0.95, histogram))
		UpdateLatencyP99(quantile(0.99, histogram))
	}
	return nil
}

func hasServerErrorStatus(labels []*dto.LabelPair) bool {
	for _, label := range labels {
		if label.GetName() == "status" {
			return strings.HasPrefix(label.GetValue(), "5")
		}
	}
	return false
}

// mergeHistograms folds the per-label histograms into one so the percentile
// reflects all endpoints together.
func mergeHistograms(series []*dto.Metric) *dto.Histogram {
	merged := &dto.Histogram{}
	buckets := map[float64]uint64{}
	var count uint64

	for _, m := range series {
		h := m.GetHistogram()
		if h == nil {
			continue
		}
		count += h.GetSampleCount()
		for _, b := range h.GetBucket() {
			buckets[b.GetUpperBound()] += b.GetCumulativeCount()
		}
	}

	merged.SampleCount = &count
	for bound, cumulative := range buckets {
		bound, cumulative := bound, cumulative
		merged.Bucket = append(merged.Bucket, &dto.Bucket{
			UpperBound:      &bound,
			CumulativeCount: &cumulative,
		})
	}
	sortBuckets(merged.Bucket)
	return merged
}

func sortBuckets(buckets []*dto.Bucket) {
	for i := 1; i < len(buckets); i++ {
		for j := i; j > 0 && buckets[j].GetUpperBound() < buckets[j-1].GetUpperBound(); j-- {
			buckets[j], buckets[j-1] = buckets[j-1], buckets[j]
		}
	}
}

// quantile estimates the q-th percentile by linear interpolation inside the
// bucket that crosses the target rank, mirroring histogram_quantile.
func quantile(q float64, h *dto.Histogram) float64 {
	buckets := h.GetBucket()
	if len(buckets) == 0 {
		return 0
	}

	rank := q * float64(h.GetSampleCount())
	var prevBound float64
	var prevCount uint64

	for _, b := range buckets {
		if float64(b.GetCumulativeCount()) >= rank {
			bucketCount := float64(b.GetCumulativeCount() - prevCount)
			if bucketCount == 0 {
				return b.GetUpperBound()
			}
			fraction := (rank - float64(prevCount)) / bucketCount
			return prevBound + (b.GetUpperBound()-prevBound)*fraction
		}
		prevBound = b.GetUpperBound()
		prevCount = b.GetCumulativeCount()
	}
	return buckets[len(buckets)-1].GetUpperBound()
}
