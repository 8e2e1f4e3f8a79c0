package ragechat

import (
	"fmt"
	"time"
)

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// TimestampLayout is the display layout of Message.Timestamp (24h HH:MM).
const TimestampLayout = "15:04"

// Message represents a single message in a conversation
type Message struct {
	ID        int64  `json:"id"`        // Unix milliseconds at creation; not unique
	Content   string `json:"content"`   // Message content
	Sender    Sender `json:"sender"`    // "user" or "ai"
	Timestamp string `json:"timestamp"` // Display time, e.g. "14:05"
}

// NewMessage creates a message stamped with the given time.
// Two messages created within the same millisecond share an ID.
func NewMessage(content string, sender Sender, now time.Time) Message {
	return Message{
		ID:        now.UnixMilli(),
		Content:   content,
		Sender:    sender,
		Timestamp: now.Format(TimestampLayout),
	}
}

// ParseSender parses a sender string ("user" or "ai").
func ParseSender(s string) (Sender, error) {
	switch Sender(s) {
	case SenderUser, SenderAI:
		return Sender(s), nil
	default:
		return "", fmt.Errorf("invalid sender: %q (expected user or ai)", s)
	}
}
