package respond

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/faqit/core"
)

// ConversationLog is an append-only record of answered queries.
// It is safe for concurrent use.
type ConversationLog struct {
	mu           sync.Mutex
	interactions []core.Interaction
}

// NewConversationLog creates an empty log.
func NewConversationLog() *ConversationLog {
	return &ConversationLog{}
}

// Append records an interaction, assigning an ID and timestamp when unset,
// and returns the stored value.
func (l *ConversationLog) Append(i core.Interaction) core.Interaction {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.At.IsZero() {
		i.At = time.Now().UTC()
	}
	i.Topics = slices.Clone(i.Topics)

	l.mu.Lock()
	l.interactions = append(l.interactions, i)
	l.mu.Unlock()
	return i
}

// Len returns the number of recorded interactions.
func (l *ConversationLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.interactions)
}

// Snapshot returns a copy of the log in append order.
func (l *ConversationLog) Snapshot() []core.Interaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.interactions)
}
