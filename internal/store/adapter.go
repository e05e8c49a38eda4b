package store

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/balkashynov/pmboard/internal/db"
	"github.com/balkashynov/pmboard/internal/models"
)

// DefaultKey is the key the snapshot is stored under
const DefaultKey = "pmDashboard_v1"

// Adapter reads and writes the whole snapshot as one serialized value.
// It never returns storage or decoding errors to its callers: a broken or
// missing value loads as the default snapshot and failed writes are logged.
type Adapter struct {
	kv  db.KeyValueStore
	key string
	log *zap.Logger
}

// NewAdapter wraps kv. An empty key uses DefaultKey; a nil logger discards logs.
func NewAdapter(kv db.KeyValueStore, key string, log *zap.Logger) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{kv: kv, key: key, log: log}
}

// Load returns the stored snapshot, or a fresh default one when nothing
// usable is stored
func (a *Adapter) Load() models.Snapshot {
	raw, ok, err := a.kv.Get(a.key)
	if err != nil {
		a.log.Warn("failed to read snapshot, starting from defaults", zap.String("key", a.key), zap.Error(err))
		return models.DefaultSnapshot()
	}
	if !ok || raw == "" {
		return models.DefaultSnapshot()
	}

	snapshot, err := decodeSnapshot([]byte(raw))
	if err != nil {
		a.log.Warn("corrupted snapshot, resetting", zap.String("key", a.key), zap.Error(err))
		return models.DefaultSnapshot()
	}
	return snapshot
}

// Save serializes s and writes it with a single Set call
func (a *Adapter) Save(s models.Snapshot) {
	data, err := json.Marshal(s)
	if err != nil {
		a.log.Error("failed to encode snapshot", zap.Error(err))
		return
	}
	if err := a.kv.Set(a.key, string(data)); err != nil {
		a.log.Error("failed to save snapshot", zap.String("key", a.key), zap.Int("bytes", len(data)), zap.Error(err))
	}
}

// decodeSnapshot applies stored top-level keys over the defaults.
// A key that is present replaces the default value as a whole.
func decodeSnapshot(data []byte) (models.Snapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return models.Snapshot{}, err
	}

	s := models.DefaultSnapshot()
	targets := map[string]any{
		"projects":       &s.Projects,
		"tasks":          &s.Tasks,
		"team":           &s.Team,
		"preferences":    &s.Preferences,
		"dashboardState": &s.DashboardState,
		"activity":       &s.Activity,
		"notifications":  &s.Notifications,
	}
	for key, target := range targets {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := decodeField(raw, target); err != nil {
			return models.Snapshot{}, err
		}
	}

	s.Normalize()
	return s, nil
}

// decodeField decodes raw into target, starting from its zero value
func decodeField(raw json.RawMessage, target any) error {
	switch t := target.(type) {
	case *models.Preferences:
		*t = models.Preferences{}
	case *models.DashboardState:
		*t = models.DashboardState{}
	case *[]models.TeamMember:
		*t = nil
	}
	return json.Unmarshal(raw, target)
}
