package service

import (
	"strings"

	"github.com/balkashynov/pmboard/internal/models"
)

// CreateMemberRequest holds the data needed to add a team member
type CreateMemberRequest struct {
	Name string
	Role string // defaults to "Member"
}

// AddTeamMember adds a member to the team
func (s *Service) AddTeamMember(req CreateMemberRequest) (*models.TeamMember, error) {
	member := models.TeamMember{
		Name: strings.TrimSpace(req.Name),
		Role: strings.TrimSpace(req.Role),
	}
	if member.Name == "" {
		return nil, ErrNameRequired
	}
	if member.Role == "" {
		member.Role = models.DefaultMemberRole
	}

	_, err := s.container.Update(func(snap *models.Snapshot) error {
		member.ID = s.newID(prefixMember)
		snap.Team = append(snap.Team, member)

		s.record(snap, models.ActivityMemberCreate, "Team member added: "+member.Name, map[string]string{
			"memberId": member.ID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}
