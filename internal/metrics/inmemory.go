package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	SignInsNewUser          uint64
	SignInsExistingUser     uint64
	MessagesCreated         uint64
	MessagesDeleted         uint64
	MessagesNotAccepting    uint64
	MessagesInvalidContent  uint64
	MessagesUnknownReceiver uint64
	AcceptToggles           uint64
	SuggestLive             uint64
	SuggestTopicFallback    uint64
	SuggestGenericFallback  uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	signInsNewUser          uint64
	signInsExistingUser     uint64
	messagesCreated         uint64
	messagesDeleted         uint64
	messagesNotAccepting    uint64
	messagesInvalidContent  uint64
	messagesUnknownReceiver uint64
	acceptToggles           uint64
	suggestLive             uint64
	suggestTopicFallback    uint64
	suggestGenericFallback  uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		SignInsNewUser:          atomic.LoadUint64(&m.signInsNewUser),
		SignInsExistingUser:     atomic.LoadUint64(&m.signInsExistingUser),
		MessagesCreated:         atomic.LoadUint64(&m.messagesCreated),
		MessagesDeleted:         atomic.LoadUint64(&m.messagesDeleted),
		MessagesNotAccepting:    atomic.LoadUint64(&m.messagesNotAccepting),
		MessagesInvalidContent:  atomic.LoadUint64(&m.messagesInvalidContent),
		MessagesUnknownReceiver: atomic.LoadUint64(&m.messagesUnknownReceiver),
		AcceptToggles:           atomic.LoadUint64(&m.acceptToggles),
		SuggestLive:             atomic.LoadUint64(&m.suggestLive),
		SuggestTopicFallback:    atomic.LoadUint64(&m.suggestTopicFallback),
		SuggestGenericFallback:  atomic.LoadUint64(&m.suggestGenericFallback),
	}
}

// IncSignIn increments the sign-in counter for the given status.
func (m *InMemoryRecorder) IncSignIn(status string) {
	switch status {
	case "new_user":
		atomic.AddUint64(&m.signInsNewUser, 1)
	case "existing_user":
		atomic.AddUint64(&m.signInsExistingUser, 1)
	}
}

// IncMessageCreated increments the created-message counter.
func (m *InMemoryRecorder) IncMessageCreated() {
	atomic.AddUint64(&m.messagesCreated, 1)
}

// IncMessageDeleted increments the deleted-message counter.
func (m *InMemoryRecorder) IncMessageDeleted() {
	atomic.AddUint64(&m.messagesDeleted, 1)
}

// IncMessageRejected increments the rejection counter for the given reason.
func (m *InMemoryRecorder) IncMessageRejected(reason string) {
	switch reason {
	case "not_accepting":
		atomic.AddUint64(&m.messagesNotAccepting, 1)
	case "invalid_content":
		atomic.AddUint64(&m.messagesInvalidContent, 1)
	case "unknown_receiver":
		atomic.AddUint64(&m.messagesUnknownReceiver, 1)
	}
}

// IncAcceptToggled increments the accept-flag toggle counter.
func (m *InMemoryRecorder) IncAcceptToggled() {
	atomic.AddUint64(&m.acceptToggles, 1)
}

// IncSuggestServed increments the suggestion counter for the given tier.
func (m *InMemoryRecorder) IncSuggestServed(tier string) {
	switch tier {
	case "live":
		atomic.AddUint64(&m.suggestLive, 1)
	case "topic_fallback":
		atomic.AddUint64(&m.suggestTopicFallback, 1)
	case "generic_fallback":
		atomic.AddUint64(&m.suggestGenericFallback, 1)
	}
}
