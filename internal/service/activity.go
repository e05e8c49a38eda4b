package service

import "github.com/balkashynov/pmboard/internal/models"

// record prepends an activity entry and its notification mirror, trimming
// both lists to their retention bounds
func (s *Service) record(snap *models.Snapshot, kind, message string, meta map[string]string) models.ActivityEntry {
	entry := models.ActivityEntry{
		ID:        s.newID(prefixActivity),
		Type:      kind,
		Message:   message,
		Meta:      meta,
		Timestamp: s.now().UTC(),
	}
	AppendActivity(snap, entry)
	return entry
}

// AppendActivity adds entry to the front of the activity log and the
// notification list and drops the oldest entries beyond each bound
func AppendActivity(snap *models.Snapshot, entry models.ActivityEntry) {
	snap.Activity = prepend(snap.Activity, entry.Clone(), models.MaxActivityEntries)
	snap.Notifications = prepend(snap.Notifications, entry.Clone(), models.MaxNotifications)
}

func prepend(entries []models.ActivityEntry, entry models.ActivityEntry, limit int) []models.ActivityEntry {
	n := len(entries) + 1
	if n > limit {
		n = limit
	}
	out := make([]models.ActivityEntry, 0, n)
	out = append(out, entry)
	for _, e := range entries {
		if len(out) == n {
			break
		}
		out = append(out, e)
	}
	return out
}
