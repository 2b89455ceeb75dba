package services

// Realtime event types pushed to connected participants.
const (
	EventMatchCreated   = "match.created"
	EventMessageCreated = "message.created"
)

// Event is the payload published on a per-match channel.
type Event struct {
	Type    string `json:"type"`
	MatchID string `json:"match_id"`
	Payload any    `json:"payload,omitempty"`
}

// EventPublisher decouples core logic from the realtime transport. Services
// publish after their transactional write commits; the implementation (the
// websocket hub) fans the event out to whichever recipients are connected.
// Publishing must never fail a request.
type EventPublisher interface {
	Publish(userIDs []string, event Event)
}

// NopPublisher is used when no realtime transport is wired, e.g. in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(userIDs []string, event Event) {}
