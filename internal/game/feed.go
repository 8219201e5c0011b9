package game

const feedMaxEntries = 24

// FeedEntry is a single line in the on-screen event feed.
type FeedEntry struct {
	Frame   int
	Kind    EventKind
	Message string
}

// EventFeed is a ring buffer of recent engine events for the HUD overlay.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry to the feed.
func (f *EventFeed) Add(frame int, kind EventKind, msg string) {
	f.entries[f.head] = FeedEntry{
		Frame:   frame,
		Kind:    kind,
		Message: msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Push records an engine event. Spawns are too frequent to be useful here.
func (f *EventFeed) Push(ev Event) {
	if ev.Kind == EventSpawnEnemy || ev.Kind == EventSpawnAmmo {
		return
	}
	f.Add(ev.Frame, ev.Kind, ev.Message())
}

// Len reports how many entries are held.
func (f *EventFeed) Len() int { return f.count }

// Recent returns up to n entries in chronological order (oldest first).
// n <= 0 returns everything held.
func (f *EventFeed) Recent(n int) []FeedEntry {
	if n <= 0 || n > f.count {
		n = f.count
	}
	result := make([]FeedEntry, n)
	for i := 0; i < n; i++ {
		idx := (f.head - n + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Clear drops every entry.
func (f *EventFeed) Clear() {
	f.head = 0
	f.count = 0
}
