// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInactiveUser       = errors.New("user is inactive")

	// Structure-related errors
	ErrStructureNotFound = errors.New("structure not found")
	ErrAlreadyHaveRole   = errors.New("user already has a role")

	// Role-related errors
	ErrRoleNotFound            = errors.New("role not found")
	ErrRoleNotFoundForUser     = errors.New("not found role for this user")
	ErrNotTeamAdministrator    = errors.New("only the team administrator can do this action")
	ErrCrossStructureViolation = errors.New("role belongs to another structure")
	ErrSelfDeletion            = errors.New("you can't delete your own role")

	// Relation-related errors
	ErrRelationNotFound      = errors.New("relation not found")
	ErrRelationAlreadyExists = errors.New("relation already exists")
	ErrSelfRelation          = errors.New("a role can't be its own superior")
	ErrRelationCycle         = errors.New("relation would create a cycle")

	// Work task errors
	ErrTaskNotFound            = errors.New("task not found")
	ErrTasksNotFound           = errors.New("no rated tasks found")
	ErrNotDirectSuperior       = errors.New("you can't create task for this user")
	ErrNotTaskCreator          = errors.New("only the task creator can do this action")
	ErrNotTaskAssignee         = errors.New("only the task assignee can do this action")
	ErrTaskBeforeNow           = errors.New("task complete_by must be after now")
	ErrInvalidStatusTransition = errors.New("invalid task status transition")
	ErrInvalidRate             = errors.New("invalid task rate")

	// Meeting errors
	ErrMeetingNotFound   = errors.New("meeting not found")
	ErrNotMeetingCreator = errors.New("only the meeting creator can do this action")
	ErrMeetingBeforeNow  = errors.New("meeting datetime must be after now")
	ErrUserAlreadyAdded  = errors.New("user already added to meeting")
	ErrUserNotInMeeting  = errors.New("user is not in meeting")
)
