package repositories

import (
	"sync"

	"tripscout/internal/models/response_models"
)

// ItineraryList is the ordered collection of destinations the user chose to
// keep for one session. Entries are keyed by destination name: at most one
// entry per name, insertion order preserved for display. Every operation is
// total, there are no error cases.
type ItineraryList struct {
	mu      sync.RWMutex
	entries []response_models.Destination
}

func NewItineraryList() *ItineraryList {
	return &ItineraryList{}
}

// Add appends d unless an entry with the same name is already present.
// Repeated identical adds are no-ops.
func (l *ItineraryList) Add(d response_models.Destination) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if e.Name == d.Name {
			return
		}
	}
	l.entries = append(l.entries, d)
}

// Remove deletes the entry with the given name if present.
func (l *ItineraryList) Remove(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.Name == name {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Clear empties the list unconditionally.
func (l *ItineraryList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// Items returns a snapshot of the current entries in insertion order.
func (l *ItineraryList) Items() []response_models.Destination {
	l.mu.RLock()
	defer l.mu.RUnlock()

	items := make([]response_models.Destination, len(l.entries))
	copy(items, l.entries)
	return items
}

func (l *ItineraryList) Contains(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, e := range l.entries {
		if e.Name == name {
			return true
		}
	}
	return false
}
