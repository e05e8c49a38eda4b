package models

// Theme is the UI color scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Role switches between the manager and member views
type Role string

const (
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// Views the dashboard can open on
const (
	ViewDashboard = "dashboard"
	ViewProjects  = "projects"
	ViewTasks     = "tasks"
	ViewTeam      = "team"
	ViewReports   = "reports"
	ViewSettings  = "settings"
)

// Views lists every navigable view
var Views = []string{ViewDashboard, ViewProjects, ViewTasks, ViewTeam, ViewReports, ViewSettings}

// Optional dashboard panels
const (
	PanelActivity  = "activity"
	PanelDeadlines = "deadlines"
)

// Preferences holds per-user display settings
type Preferences struct {
	Theme         Theme  `json:"theme"`
	LastView      string `json:"lastView"`
	ShowActivity  bool   `json:"showActivity"`
	ShowDeadlines bool   `json:"showDeadlines"`
	Role          Role   `json:"role"`
}

// DashboardState remembers navigation state between sessions
type DashboardState struct {
	LastOpenedProjectID string `json:"lastOpenedProjectId"`
}
