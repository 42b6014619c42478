package service

import "errors"

// Validation errors: the request itself is malformed.
var (
	ErrNameRequired          = errors.New("project name is required")
	ErrJoinCodeRequired      = errors.New("join code is required")
	ErrInvalidProjectStatus  = errors.New("invalid project status")
	ErrInvalidDecision       = errors.New("decision must be 'approved' or 'rejected'")
	ErrInvalidTaskStatus     = errors.New("invalid task status")
	ErrMeetingFieldsRequired = errors.New("meeting title and date are required")
	ErrTaskFieldsRequired    = errors.New("task title and assignee are required")
	ErrSignupFieldsRequired  = errors.New("name, email and password are required")
	ErrInvalidRole           = errors.New("role must be 'admin' or 'member'")
)

// Authorization errors: the caller lacks the required capability.
var (
	ErrAdminOnly          = errors.New("admins only")
	ErrMemberOnly         = errors.New("members only")
	ErrNotProjectOwner    = errors.New("not your project")
	ErrNotAssignedTask    = errors.New("not your assigned task")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// NotFound errors.
var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrJoinRequestNotFound  = errors.New("join request not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// Conflict errors.
var (
	ErrAlreadyMember    = errors.New("you are already a member of this project")
	ErrAlreadyRequested = errors.New("you have already requested to join this project")
	ErrEmailTaken       = errors.New("email is already registered")
)
