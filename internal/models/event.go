package models

import "time"

const (
	// DateKeyLayout is the layout of Event.DateKey.
	DateKeyLayout = "2006-01-02"
	// MonthKeyLayout names a calendar month.
	MonthKeyLayout = "2006-01"
)

// Priority is the colour tier of a calendar event.
type Priority string

const (
	PriorityRed    Priority = "red"
	PriorityOrange Priority = "orange"
	PriorityYellow Priority = "yellow"
)

// Rank orders priorities for sorting: red first, yellow last.
// Unknown priorities sort after yellow.
func (p Priority) Rank() int {
	switch p {
	case PriorityRed:
		return 0
	case PriorityOrange:
		return 1
	case PriorityYellow:
		return 2
	default:
		return 3
	}
}

// Valid reports whether p is one of the known tiers.
func (p Priority) Valid() bool {
	return p.Rank() < 3
}

// Event is a calendar entry bound to a single day.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DateKey     string   `json:"dateKey"`
	Notify      bool     `json:"notify"`
	Priority    Priority `json:"priority"`
}

// NewEvent holds the caller-supplied fields of an event being created.
type NewEvent struct {
	Title       string
	Description string
	DateKey     string
	Notify      bool
	Priority    Priority
}

// EventPatch is a partial update of an event. The day of an event is fixed.
type EventPatch struct {
	Title       Optional[string]   `json:"title,omitzero"`
	Description Optional[string]   `json:"description,omitzero"`
	Notify      Optional[bool]     `json:"notify,omitzero"`
	Priority    Optional[Priority] `json:"priority,omitzero"`
}

// Apply merges the present fields of p over e.
func (p EventPatch) Apply(e *Event) {
	p.Title.ApplyTo(&e.Title)
	p.Description.ApplyTo(&e.Description)
	p.Notify.ApplyTo(&e.Notify)
	p.Priority.ApplyTo(&e.Priority)
}

// DateKey formats t as an event day key in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ValidDateKey reports whether key is a well-formed day key.
func ValidDateKey(key string) bool {
	_, err := time.Parse(DateKeyLayout, key)
	return err == nil
}
