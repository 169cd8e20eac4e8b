// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Sign-in metrics
	IncSignIn(status string) // status: "new_user" or "existing_user"

	// Message metrics
	IncMessageCreated()
	IncMessageDeleted()
	IncMessageRejected(reason string) // reason: "not_accepting", "invalid_content", "unknown_receiver"
	IncAcceptToggled()

	// Suggestion metrics
	IncSuggestServed(tier string) // tier: "live", "topic_fallback", "generic_fallback"
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
