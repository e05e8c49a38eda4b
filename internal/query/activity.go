package query

import "github.com/balkashynov/pmboard/internal/models"

// FeedSize is how many activity entries the dashboard shows
const FeedSize = 40

// ActivityFeed returns up to limit entries, newest first. limit <= 0 means all.
func ActivityFeed(s models.Snapshot, limit int) []models.ActivityEntry {
	return newest(s.Activity, limit)
}

// Notifications returns up to limit notifications, newest first.
// limit <= 0 means all.
func Notifications(s models.Snapshot, limit int) []models.Notification {
	return newest(s.Notifications, limit)
}

func newest(entries []models.ActivityEntry, limit int) []models.ActivityEntry {
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}
	out := make([]models.ActivityEntry, limit)
	for i := range out {
		out[i] = entries[i].Clone()
	}
	return out
}
