package service

import "errors"

// Validation errors. Operations that return one of these change nothing.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrTitleRequired   = errors.New("task title is required")
	ErrProjectRequired = errors.New("project is required")
	ErrUnknownProject  = errors.New("project does not exist")
	ErrUnknownAssignee = errors.New("assignee is not a team member")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDate     = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidView     = errors.New("invalid view")
	ErrUnknownPanel    = errors.New("unknown panel")
)
