// Package observability groups the cross-cutting instrumentation packages:
//
//   - logging: structured slog loggers and context propagation
//   - metrics: Prometheus metrics for the persistence layer
//   - tracing: OpenTelemetry tracer setup and HTTP span middleware
//
// HTTP-level request metrics live next to the handlers; this tree holds the
// instrumentation that is independent of any one transport.
package observability
