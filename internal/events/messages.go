package events

import (
	"encoding/json"
	"time"

	"budgetmaster/internal/store"
)

// ChangeMessage announces a committed record write. It carries no record
// data; receivers only need to know which snapshot went stale.
type ChangeMessage struct {
	store.Change
	Origin    string    `json:"origin"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChangeMessage wraps ch for publishing from origin.
func NewChangeMessage(origin string, ch store.Change) *ChangeMessage {
	return &ChangeMessage{
		Change:    ch,
		Origin:    origin,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ChangeMessageFromJSON decodes a message body.
func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
