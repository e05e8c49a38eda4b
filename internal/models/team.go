package models

// DefaultMemberRole is used when a member is added without a role
const DefaultMemberRole = "Member"

// TeamMember is someone tasks can be assigned to
type TeamMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
