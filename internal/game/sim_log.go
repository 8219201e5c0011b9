package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded engine event.
type SimLogEntry struct {
	Frame    int
	Category string  // spawn, player, missile, enemy, ammo, session
	Key      string  // event name within the category
	Column   int     // lane the event happened in, -1 when not lane bound
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[F=0042] L2 ammo     collect          collected 1 rounds
func (e SimLogEntry) String() string {
	lane := "--"
	if e.Column >= 0 {
		lane = fmt.Sprintf("L%d", e.Column)
	}
	return fmt.Sprintf("[F=%04d] %-2s %-8s %-16s %s",
		e.Frame, lane, e.Category, e.Key, e.Value)
}

// SimLog collects structured events for a session. Unlike EventFeed (a UI
// ring buffer) it is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-frame spawn and exit
// chatter is also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(frame int, category, key string, column int, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Frame:    frame,
		Category: category,
		Key:      key,
		Column:   column,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(frame int, category, key string, column int, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(frame, category, key, column, value, numVal)
}

// Record turns an engine event into an entry. Spawns and exits are
// high-volume and only kept in verbose mode.
func (sl *SimLog) Record(ev Event) {
	switch ev.Kind {
	case EventSpawnEnemy, EventSpawnAmmo, EventEnemyExit, EventAmmoExit, EventMissileExit, EventMove:
		sl.AddVerbose(ev.Frame, ev.Kind.category(), ev.Kind.String(), ev.Column, ev.Message(), ev.Value)
	default:
		sl.Add(ev.Frame, ev.Kind.category(), ev.Kind.String(), ev.Column, ev.Message(), ev.Value)
	}
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Reset drops every entry.
func (sl *SimLog) Reset() {
	sl.entries = sl.entries[:0]
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterFrameRange returns entries within [from, to] inclusive.
func (sl *SimLog) FilterFrameRange(from, to int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Frame >= from && e.Frame <= to {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// FirstFrame returns the frame of the first entry matching category+key, or -1.
func (sl *SimLog) FirstFrame(category, key string) int {
	for _, e := range sl.entries {
		if e.Category == category && e.Key == key {
			return e.Frame
		}
	}
	return -1
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a frame range.
func (sl *SimLog) FormatRange(from, to int) string {
	var sb strings.Builder
	for _, e := range sl.FilterFrameRange(from, to) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the session so far.
func (sl *SimLog) Summary(e *Engine) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at F=%04d ---\n", e.Frame())
	fmt.Fprintf(&sb, "score=%d (raw %.0fms)  ammo=%d  missiles_in_flight=%d\n",
		e.DisplayScore(), e.Score(), e.Player().Ammo, len(e.Player().Missiles))
	fmt.Fprintf(&sb, "enemies=%d/%d  ammo_drops=%d/%d\n",
		e.Enemies().Occupied(), e.Rules().MaxEnemies, e.AmmoDrops().Occupied(), e.Rules().MaxAmmo)
	fmt.Fprintf(&sb, "fired=%d kills=%d collected=%d\n",
		sl.CountCategory("missile", "fire"), sl.CountCategory("enemy", "kill"), sl.CountCategory("ammo", "collect"))
	if e.Player().Dead {
		sb.WriteString("state: game over\n")
	} else {
		sb.WriteString("state: running\n")
	}
	return sb.String()
}
