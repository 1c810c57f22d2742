package models

import (
	"testing"
	"time"
)

// Test UserForm validation
func TestUserFormValidation(t *testing.T) {
	// Test valid form
	validForm := UserForm{
		Forename:    "John",
		Surname:     "Doe",
		Email:       "john.doe@example.com",
		DateOfBirth: "1990-01-02",
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Test invalid form
	invalidForm := UserForm{
		Forename:    "", // Empty forename
		Surname:     "", // Empty surname
		Email:       "invalid-email",
		DateOfBirth: "02/01/1990",
	}
	errors = invalidForm.Validate()
	if len(errors) != 4 {
		t.Errorf("Expected 4 errors for invalid form, got: %v", errors)
	}
}

func TestUserFormToUser(t *testing.T) {
	form := UserForm{
		Forename:    "  John ",
		Surname:     "Doe",
		Email:       "john.doe@example.com",
		DateOfBirth: "1990-01-02",
		IsActive:    true,
	}

	user := form.ToUser()

	if user.Forename != "John" {
		t.Errorf("Expected trimmed forename 'John', got %q", user.Forename)
	}

	expected := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)
	if !user.DateOfBirth.Equal(expected) {
		t.Errorf("Expected date of birth %v, got %v", expected, user.DateOfBirth)
	}

	if !user.IsActive {
		t.Error("Expected active flag to carry over")
	}
}

func TestUserFullName(t *testing.T) {
	user := User{Forename: "Peter", Surname: "Loew"}
	if got := user.FullName(); got != "Peter Loew" {
		t.Errorf("Expected 'Peter Loew', got %q", got)
	}

	mononym := User{Forename: "Cher"}
	if got := mononym.FullName(); got != "Cher" {
		t.Errorf("Expected 'Cher', got %q", got)
	}
}

func TestUserLogActionValid(t *testing.T) {
	for _, action := range []UserLogAction{ActionAdd, ActionEdit, ActionDelete} {
		if !action.Valid() {
			t.Errorf("Expected %q to be valid", action)
		}
	}

	if UserLogAction("replace").Valid() {
		t.Error("Expected 'replace' to be invalid")
	}
}

func TestUserLogActionLabel(t *testing.T) {
	cases := map[UserLogAction]string{
		ActionAdd:    "Added",
		ActionEdit:   "Edited",
		ActionDelete: "Deleted",
	}

	for action, expected := range cases {
		if got := action.Label(); got != expected {
			t.Errorf("Expected label %q for %q, got %q", expected, action, got)
		}
	}
}
