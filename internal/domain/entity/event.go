package entity

import "time"

// EventKind names a session-level signal.
type EventKind string

const (
	// EventSessionStarted fires after a successful login.
	EventSessionStarted EventKind = "session_started"
	// EventSessionExpired fires on hard logout: failed refresh, missing refresh token, or a 401 after retry.
	EventSessionExpired EventKind = "session_expired"
	// EventLoggedOut fires after an explicit logout.
	EventLoggedOut EventKind = "logged_out"
	// EventConfigurationChanged fires after the business configuration was saved.
	EventConfigurationChanged EventKind = "configuration_changed"
	// EventLanguageChanged fires when the preferred language changes.
	EventLanguageChanged EventKind = "language_changed"
)

// Event is published on the session event bus.
type Event struct {
	Kind       EventKind
	Reason     string
	Language   string
	OccurredAt time.Time
}

// EndsSession reports whether the event tears the session down.
func (e Event) EndsSession() bool {
	return e.Kind == EventSessionExpired || e.Kind == EventLoggedOut
}
