package monitor

import "sync/atomic"

// LiveSettings holds the settings snapshot shared by the scheduler and the
// query facade. Snapshots are immutable; updates swap the pointer.
type LiveSettings struct {
	current atomic.Pointer[Settings]
}

// NewLiveSettings creates a holder initialised with the given snapshot.
func NewLiveSettings(initial Settings) *LiveSettings {
	l := &LiveSettings{}
	l.Store(initial)

	return l
}

// Load returns the current snapshot.
func (l *LiveSettings) Load() Settings {
	return *l.current.Load()
}

// Store publishes a new snapshot.
func (l *LiveSettings) Store(s Settings) {
	l.current.Store(&s)
}
