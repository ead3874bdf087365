// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count)
//   - Business metrics (submissions, moderation decisions, corpus gauges)
//   - Authentication metrics
//   - Database query metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "pressroom/internal/observability/metrics"
//
//	func approve(id string) {
//	    // ... transition the article ...
//	    metrics.RecordModeration("approve")
//	}
package metrics
