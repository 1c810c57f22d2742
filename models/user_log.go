package models

import "time"

// UserLogAction identifies the kind of mutation an audit entry records
type UserLogAction string

const (
	ActionAdd    UserLogAction = "add"
	ActionEdit   UserLogAction = "edit"
	ActionDelete UserLogAction = "delete"
)

// Valid reports whether the action is one of the known kinds
func (a UserLogAction) Valid() bool {
	switch a {
	case ActionAdd, ActionEdit, ActionDelete:
		return true
	}
	return false
}

// Label returns a display label for the action
func (a UserLogAction) Label() string {
	switch a {
	case ActionAdd:
		return "Added"
	case ActionEdit:
		return "Edited"
	case ActionDelete:
		return "Deleted"
	}
	return string(a)
}

// UserLog represents a single audit entry for a user mutation.
// Entries are immutable once written and deliberately outlive the user
// they reference: UserID is a weak reference, not a foreign key, and
// LastKnownName keeps the entry readable after the user is deleted.
type UserLog struct {
	ID            int64         `json:"id" db:"id"`
	UserID        int64         `json:"user_id" db:"user_id"`
	Message       string        `json:"message" db:"message"`
	Created       time.Time     `json:"created" db:"created"`
	Action        UserLogAction `json:"action" db:"action"`
	BeforeChange  string        `json:"before_change" db:"before_change"`
	AfterChange   string        `json:"after_change" db:"after_change"`
	LastKnownName string        `json:"last_known_name" db:"last_known_name"`
}
