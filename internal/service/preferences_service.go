package service

import (
	"fmt"
	"slices"

	"github.com/balkashynov/pmboard/internal/models"
	"github.com/balkashynov/pmboard/internal/store"
)

// ToggleTheme switches between the light and dark themes
func (s *Service) ToggleTheme() (models.Preferences, error) {
	return s.updatePreferences(func(p *models.Preferences) error {
		if p.Theme == models.ThemeDark {
			p.Theme = models.ThemeLight
		} else {
			p.Theme = models.ThemeDark
		}
		return nil
	})
}

// ToggleRole switches between the manager and member views
func (s *Service) ToggleRole() (models.Preferences, error) {
	return s.updatePreferences(func(p *models.Preferences) error {
		if p.Role == models.RoleManager {
			p.Role = models.RoleMember
		} else {
			p.Role = models.RoleManager
		}
		return nil
	})
}

// SetLastView remembers the view to open next time
func (s *Service) SetLastView(view string) (models.Preferences, error) {
	if !slices.Contains(models.Views, view) {
		return s.Snapshot().Preferences, fmt.Errorf("%w: %q", ErrInvalidView, view)
	}
	return s.updatePreferences(func(p *models.Preferences) error {
		p.LastView = view
		return nil
	})
}

// SetPanelVisibility shows or hides an optional dashboard panel
func (s *Service) SetPanelVisibility(panel string, visible bool) (models.Preferences, error) {
	return s.updatePreferences(func(p *models.Preferences) error {
		switch panel {
		case models.PanelActivity:
			p.ShowActivity = visible
		case models.PanelDeadlines:
			p.ShowDeadlines = visible
		default:
			return fmt.Errorf("%w: %q", ErrUnknownPanel, panel)
		}
		return nil
	})
}

// SetLastOpenedProject remembers which project the board opens on.
// Unknown project ids are ignored.
func (s *Service) SetLastOpenedProject(id string) error {
	_, err := s.container.Update(func(snap *models.Snapshot) error {
		if snap.FindProject(id) < 0 || snap.DashboardState.LastOpenedProjectID == id {
			return store.ErrNoChange
		}
		snap.DashboardState.LastOpenedProjectID = id
		return nil
	})
	return err
}

func (s *Service) updatePreferences(fn func(p *models.Preferences) error) (models.Preferences, error) {
	snap, err := s.container.Update(func(snap *models.Snapshot) error {
		return fn(&snap.Preferences)
	})
	return snap.Preferences, err
}
