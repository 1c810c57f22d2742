package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/repositories"
	"github.com/blogem/user-management/services"
	"github.com/go-chi/chi/v5"
)

// UsersController handles user management requests
type UsersController struct {
	services *services.Services
}

// NewUsersController creates a new users controller
func NewUsersController(services *services.Services) *UsersController {
	return &UsersController{
		services: services,
	}
}

// Index handles GET /users
func (c *UsersController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.services.User.GetAll(r.Context())
	if err != nil {
		http.Error(w, "Failed to load users: "+err.Error(), http.StatusInternalServerError)
		return
	}

	c.renderList(w, users, "all")
}

// ListActive handles GET /users/active
func (c *UsersController) ListActive(w http.ResponseWriter, r *http.Request) {
	c.listFiltered(w, r, true)
}

// ListInactive handles GET /users/inactive
func (c *UsersController) ListInactive(w http.ResponseWriter, r *http.Request) {
	c.listFiltered(w, r, false)
}

func (c *UsersController) listFiltered(w http.ResponseWriter, r *http.Request, isActive bool) {
	users, err := c.services.User.FilterByActive(r.Context(), isActive)
	if err != nil {
		http.Error(w, "Failed to load users: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filter := "active"
	if !isActive {
		filter = "inactive"
	}
	c.renderList(w, users, filter)
}

func (c *UsersController) renderList(w http.ResponseWriter, users []models.User, filter string) {
	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Filter      string
		Users       []models.User
	}{
		Title:       "User Management",
		CurrentPage: "users",
		Filter:      filter,
		Users:       users,
	}

	renderTemplate(w, "users", "templates/users.html", templateData)
}

// New handles GET /users/new
func (c *UsersController) New(w http.ResponseWriter, r *http.Request) {
	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Action      string
		Form        *models.UserForm
	}{
		Title:       "New User",
		CurrentPage: "users",
		Action:      "/users",
		Form:        &models.UserForm{IsActive: true}, // Default to active for new users
	}

	renderTemplate(w, "user_form", "templates/user_form.html", templateData)
}

// Create handles POST /users
func (c *UsersController) Create(w http.ResponseWriter, r *http.Request) {
	form, err := parseUserForm(r)
	if err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := c.services.Workflow.CreateUser(r.Context(), form)
	if err != nil {
		if errors.Is(err, services.ErrAuditNotRecorded) {
			// The user exists but its audit trail is incomplete; this is
			// a user-visible failure, not a silent success.
			http.Error(w, "User created but audit log failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		c.renderFormError(w, "/users", form, err)
		return
	}

	http.Redirect(w, r, "/users/"+strconv.FormatInt(user.ID, 10), http.StatusSeeOther)
}

// View handles GET /users/{id}
func (c *UsersController) View(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := c.services.User.GetUserByID(r.Context(), id)
	if err != nil {
		if repositories.IsNotFound(err) {
			http.Error(w, "User not found: "+err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	logs, err := c.services.Logging.GetAllLogsForUser(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to load user logs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		User        *models.User
		Logs        []models.UserLog
	}{
		Title:       user.FullName(),
		CurrentPage: "users",
		User:        user,
		Logs:        logs,
	}

	renderTemplate(w, "user_view", "templates/user_view.html", templateData)
}

// Edit handles GET /users/{id}/edit
func (c *UsersController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := c.services.User.GetUserByID(r.Context(), id)
	if err != nil {
		if repositories.IsNotFound(err) {
			http.Error(w, "User not found: "+err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	form := &models.UserForm{
		Forename:    user.Forename,
		Surname:     user.Surname,
		Email:       user.Email,
		DateOfBirth: models.FormatDate(user.DateOfBirth),
		IsActive:    user.IsActive,
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Action      string
		Form        *models.UserForm
	}{
		Title:       "Edit " + user.FullName(),
		CurrentPage: "users",
		Action:      "/users/" + strconv.FormatInt(id, 10),
		Form:        form,
	}

	renderTemplate(w, "user_form", "templates/user_form.html", templateData)
}

// Update handles POST /users/{id}
func (c *UsersController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	form, err := parseUserForm(r)
	if err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := c.services.Workflow.EditUser(r.Context(), id, form)
	if err != nil {
		if errors.Is(err, services.ErrAuditNotRecorded) {
			http.Error(w, "User updated but audit log failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if repositories.IsNotFound(err) {
			http.Error(w, "User not found: "+err.Error(), http.StatusNotFound)
			return
		}
		c.renderFormError(w, "/users/"+strconv.FormatInt(id, 10), form, err)
		return
	}

	http.Redirect(w, r, "/users/"+strconv.FormatInt(user.ID, 10), http.StatusSeeOther)
}

// Delete handles POST /users/{id}/delete
func (c *UsersController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	if err := c.services.Workflow.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrAuditNotRecorded) {
			http.Error(w, "User deleted but audit log failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if repositories.IsNotFound(err) {
			http.Error(w, "User not found: "+err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// renderFormError re-renders the user form with a validation error
func (c *UsersController) renderFormError(w http.ResponseWriter, action string, form *models.UserForm, err error) {
	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Action      string
		Form        *models.UserForm
	}{
		Title:       "User",
		CurrentPage: "users",
		Error:       err.Error(),
		Action:      action,
		Form:        form,
	}

	renderTemplateWithStatus(w, http.StatusBadRequest, "user_form_error", "templates/user_form.html", templateData)
}

// parseID extracts the {id} route parameter
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// parseUserForm extracts user form fields from the request
func parseUserForm(r *http.Request) (*models.UserForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	// Get the last value for 'is_active' (checkbox will override hidden field if checked)
	activeValues := r.Form["is_active"]
	isActive := len(activeValues) > 0 && activeValues[len(activeValues)-1] == "on"

	return &models.UserForm{
		Forename:    r.FormValue("forename"),
		Surname:     r.FormValue("surname"),
		Email:       r.FormValue("email"),
		DateOfBirth: r.FormValue("date_of_birth"),
		IsActive:    isActive,
	}, nil
}
