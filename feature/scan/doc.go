// Package scan reconciles spreadsheets found on disk against the registry.
//
// A ScanScheduler runs the generic engine in core/reconcile with the inventory
// adapter from the reconcile sub-package, on a fixed interval and on demand.
// Each run gets a fresh snapshot of the registry and publishes a complete
// result in one atomic swap; a failed run publishes nothing and the previous
// result stays visible.
//
// After publishing, the scheduler updates the Prometheus metrics and, when
// Redis is configured, mirrors the result as JSON so other processes can read
// it and subscribers are told the new run id.
//
// # HTTP Endpoints
//
//   - GET /scan: the latest result; ?flat=true pairs every changed column as
//     "<Column> (Excel)" and "<Column> (DB)".
//   - POST /scan: run a scan now. Concurrent requests share one run.
package scan
