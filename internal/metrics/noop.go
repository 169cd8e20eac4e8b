package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncSignIn is a no-op.
func (n *NoopRecorder) IncSignIn(status string) {}

// IncMessageCreated is a no-op.
func (n *NoopRecorder) IncMessageCreated() {}

// IncMessageDeleted is a no-op.
func (n *NoopRecorder) IncMessageDeleted() {}

// IncMessageRejected is a no-op.
func (n *NoopRecorder) IncMessageRejected(reason string) {}

// IncAcceptToggled is a no-op.
func (n *NoopRecorder) IncAcceptToggled() {}

// IncSuggestServed is a no-op.
func (n *NoopRecorder) IncSuggestServed(tier string) {}
