package reconcile

import "sync/atomic"

// Publisher holds the latest complete scan result.
// Publish swaps the whole result in one step; readers never see a partial one.
type Publisher struct {
	current atomic.Pointer[ScanResult]
}

// NewPublisher creates an empty publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// Publish replaces the current result. Nil is ignored.
func (p *Publisher) Publish(result *ScanResult) {
	if result == nil {
		return
	}
	p.current.Store(result)
}

// Latest returns the most recent result, or nil before the first scan.
// The returned value must be treated as read-only.
func (p *Publisher) Latest() *ScanResult {
	return p.current.Load()
}
