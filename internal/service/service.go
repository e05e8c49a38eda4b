// Package service implements every domain operation as a single mutator run
// through the snapshot container, so derived fields and the activity log are
// always updated in the same step as the change that caused them.
package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/store"
)

// Id prefixes per entity kind
const (
	prefixProject  = "prj"
	prefixTask     = "tsk"
	prefixMember   = "mem"
	prefixActivity = "act"
)

// Service is the entry point for all domain changes
type Service struct {
	container *store.Container
	now       func() time.Time
	newID     func(prefix string) string
	log       *zap.Logger
}

// Option customizes a Service
type Option func(*Service)

// WithClock overrides the time source used for timestamps and default dates
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides how entity ids are generated
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Service) { s.newID = gen }
}

// WithLogger sets the logger
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// New returns a Service writing through c
func New(c *store.Container, opts ...Option) *Service {
	s := &Service{
		container: c,
		now:       time.Now,
		newID:     NewID,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewID returns a process-unique id such as "prj_9b2f...".
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// Snapshot returns a copy of the current snapshot for read-only use
func (s *Service) Snapshot() models.Snapshot {
	return s.container.Snapshot()
}

// Project returns the project with id, or nil
func (s *Service) Project(id string) *models.Project {
	snap := s.container.Snapshot()
	if i := snap.FindProject(id); i >= 0 {
		return &snap.Projects[i]
	}
	return nil
}

// Task returns the task with id, or nil
func (s *Service) Task(id string) *models.Task {
	snap := s.container.Snapshot()
	if i := snap.FindTask(id); i >= 0 {
		return &snap.Tasks[i]
	}
	return nil
}

// Member returns the team member with id, or nil
func (s *Service) Member(id string) *models.TeamMember {
	snap := s.container.Snapshot()
	if i := snap.FindMember(id); i >= 0 {
		return &snap.Team[i]
	}
	return nil
}

func (s *Service) today() models.Date {
	return models.NewDate(s.now())
}

// validDate accepts the empty date or a well-formed YYYY-MM-DD date
func validDate(d models.Date) bool {
	if d.IsZero() {
		return true
	}
	_, ok := d.Time()
	return ok
}
