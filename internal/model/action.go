package model

import "time"

// ActionKind discriminates the ParsedAction variant.
type ActionKind string

const (
	ActionTask     ActionKind = "task"
	ActionEvent    ActionKind = "event"
	ActionLocation ActionKind = "location"
)

// Priority is the inferred urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
)

// EventKind classifies an extracted event.
type EventKind string

const (
	EventMeeting  EventKind = "MEETING"
	EventTask     EventKind = "TASK"
	EventDeadline EventKind = "DEADLINE"
	EventDelivery EventKind = "DELIVERY"
)

// ParsedAction is a tagged variant: exactly one of Task, Event, Location is
// non-nil, selected by Kind. Confidence is informational only; the engine
// never filters on it.
type ParsedAction struct {
	Kind       ActionKind
	Confidence float64 // in [0,1]

	Task     *TaskData
	Event    *EventData
	Location *LocationData
}

// TaskData is the payload of an ActionTask.
type TaskData struct {
	Title         string
	AssigneeNames []string   // Raw mentions, insertion order = first resolved
	AssigneeIDs   []string   // Resolved IDs; may be shorter than AssigneeNames
	DueDate       *time.Time // Date-only precision; nil when no date found
	Priority      Priority
	ProjectID     string // Pass-through from caller context
}

// EventData is the payload of an ActionEvent.
type EventData struct {
	Title       string
	Start       time.Time
	End         time.Time // Start + 1h when no explicit end found
	Location    string    // May be filled by inline extraction or reconciliation
	LocationURL string    // Always empty at this layer
	AttendeeIDs []string
	Kind        EventKind
	ProjectID   string
}

// LocationData is the payload of an ActionLocation.
type LocationData struct {
	Title       string
	Address     string
	SearchQuery string // Defaults to Title
}
