package mailbox

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eugenenazirov/mailbox-postage/internal/postage"
)

// Entry is a stored mail item together with the tracking ID assigned on acceptance.
type Entry struct {
	TrackingID uuid.UUID
	Item       postage.MailItem
}

// Option configures Mailbox behaviour.
type Option func(*Mailbox)

// WithLogger attaches a logger for debug traces of accepted and refused items.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Mailbox) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithIDGenerator overrides the tracking ID source, primarily for tests.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(m *Mailbox) {
		if gen != nil {
			m.newID = gen
		}
	}
}

// Mailbox keeps mail items in insertion order and guards access with a RWMutex.
type Mailbox struct {
	mu      sync.RWMutex
	entries []Entry

	logger *zap.Logger
	newID  func() uuid.UUID
}

// New creates an empty Mailbox.
func New(opts ...Option) *Mailbox {
	m := &Mailbox{
		logger: zap.NewNop(),
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddMailItem stores item if it has a destination address. Items without one
// are dropped without any error.
func (m *Mailbox) AddMailItem(item postage.MailItem) {
	if item == nil {
		return
	}
	if !postage.HasDestination(item) {
		m.logger.Debug("mail item refused: missing destination",
			zap.String("kind", string(item.Kind())),
			zap.Float64("weight", item.Weight()),
		)
		return
	}

	entry := Entry{TrackingID: m.newID(), Item: item}

	m.mu.Lock()
	m.entries = append(m.entries, entry)
	m.mu.Unlock()

	m.logger.Debug("mail item accepted",
		zap.String("tracking_id", entry.TrackingID.String()),
		zap.String("kind", string(item.Kind())),
		zap.String("destination", item.Destination()),
	)
}

// Stamp returns the total postage of every stored item, or 0 for an empty mailbox.
func (m *Mailbox) Stamp() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0.0
	for _, e := range m.entries {
		total += e.Item.CalculatePostage()
	}
	return total
}

// InvalidMails counts stored items lacking a destination. AddMailItem never
// stores such items, so this is zero for any mailbox built through it.
func (m *Mailbox) InvalidMails() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, e := range m.entries {
		if !postage.HasDestination(e.Item) {
			count++
		}
	}
	return count
}

// Len returns the number of stored items.
func (m *Mailbox) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Entries returns a copy of the stored entries in insertion order.
func (m *Mailbox) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
