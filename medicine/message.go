package medicine

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single transcript entry. Messages are immutable once
// appended; the transcript is an append-only ordered sequence.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Medicine  *Medicine `json:"medicineData,omitempty"`
	IsPending bool      `json:"isPending,omitempty"`
}

// NewMessage builds a message with a fresh id and the current time.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewMedicineMessage builds an assistant message carrying a resolved record.
func NewMedicineMessage(content string, med *Medicine) Message {
	m := NewMessage(RoleAssistant, content)
	m.Medicine = med
	return m
}
