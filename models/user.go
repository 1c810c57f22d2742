package models

import (
	"strings"
	"time"
)

// User represents a managed user record
type User struct {
	ID          int64     `json:"id" db:"id"`
	Forename    string    `json:"forename" db:"forename"`
	Surname     string    `json:"surname" db:"surname"`
	Email       string    `json:"email" db:"email"`
	DateOfBirth time.Time `json:"date_of_birth" db:"date_of_birth"`
	IsActive    bool      `json:"is_active" db:"is_active"`
}

// FullName returns the user's display name ("Forename Surname")
func (u *User) FullName() string {
	return strings.TrimSpace(u.Forename + " " + u.Surname)
}

// UserForm represents form data for creating/updating users
type UserForm struct {
	Forename    string `json:"forename"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	IsActive    bool   `json:"is_active"`
}

// Validate validates the user form data
func (f *UserForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Forename) == "" {
		errors = append(errors, "Forename is required")
	}

	if len(f.Forename) > 100 {
		errors = append(errors, "Forename must be less than 100 characters")
	}

	if strings.TrimSpace(f.Surname) == "" {
		errors = append(errors, "Surname is required")
	}

	if len(f.Surname) > 100 {
		errors = append(errors, "Surname must be less than 100 characters")
	}

	if f.Email != "" && len(f.Email) > 255 {
		errors = append(errors, "Email must be less than 255 characters")
	}

	if f.Email != "" && !isValidEmail(f.Email) {
		errors = append(errors, "Email format is invalid")
	}

	if f.DateOfBirth != "" {
		if _, err := ParseDate(f.DateOfBirth); err != nil {
			errors = append(errors, "Date of birth must be in YYYY-MM-DD format")
		}
	}

	return errors
}

// ToUser converts validated form data into a User record.
// The form must have passed Validate first; an unparseable date is left zero.
func (f *UserForm) ToUser() *User {
	user := &User{
		Forename: strings.TrimSpace(f.Forename),
		Surname:  strings.TrimSpace(f.Surname),
		Email:    strings.TrimSpace(f.Email),
		IsActive: f.IsActive,
	}

	if f.DateOfBirth != "" {
		if dob, err := ParseDate(f.DateOfBirth); err == nil {
			user.DateOfBirth = dob
		}
	}

	return user
}

// isValidEmail performs basic email validation
func isValidEmail(email string) bool {
	// Simple validation: must contain @ and at least one dot after @
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			if atIndex != -1 {
				return false // Multiple @ symbols
			}
			atIndex = i
		}
	}

	if atIndex == -1 || atIndex == 0 || atIndex == len(email)-1 {
		return false // No @, or @ at start/end
	}

	// Check for dot after @
	for i := atIndex + 1; i < len(email); i++ {
		if email[i] == '.' && i < len(email)-1 {
			return true
		}
	}

	return false
}
