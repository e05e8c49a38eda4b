package models

import "time"

// Retention bounds for the activity log and the notification list
const (
	MaxActivityEntries = 80
	MaxNotifications   = 30
)

// Activity entry types
const (
	ActivityProjectCreate = "project_create"
	ActivityProjectUpdate = "project_update"
	ActivityProjectDelete = "project_delete"
	ActivityTaskCreate    = "task_create"
	ActivityTaskUpdate    = "task_update"
	ActivityTaskDelete    = "task_delete"
	ActivityTaskMove      = "task_move"
	ActivityMemberCreate  = "member_create"
)

// ActivityEntry records one domain change. Notifications share the same shape.
type ActivityEntry struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Message   string            `json:"message"`
	Meta      map[string]string `json:"meta"`
	Timestamp time.Time         `json:"timestamp"`
}

// Notification mirrors an activity entry with its own retention bound
type Notification = ActivityEntry

// Clone returns a copy that shares no map with e
func (e ActivityEntry) Clone() ActivityEntry {
	if e.Meta != nil {
		meta := make(map[string]string, len(e.Meta))
		for k, v := range e.Meta {
			meta[k] = v
		}
		e.Meta = meta
	}
	return e
}
