package controllers

import (
	"net/http"
	"strconv"

	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/repositories"
	"github.com/blogem/user-management/services"
)

// LogsController handles audit log viewing requests
type LogsController struct {
	services *services.Services
}

// NewLogsController creates a new logs controller
func NewLogsController(services *services.Services) *LogsController {
	return &LogsController{
		services: services,
	}
}

// Index handles GET /logs
func (c *LogsController) Index(w http.ResponseWriter, r *http.Request) {
	logs, err := c.services.Logging.GetAllLogs(r.Context())
	if err != nil {
		http.Error(w, "Failed to load logs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		UsersName   string
		Logs        []models.UserLog
	}{
		Title:       "Audit Logs",
		CurrentPage: "logs",
		Logs:        logs,
	}

	renderTemplate(w, "logs", "templates/logs.html", templateData)
}

// ForUser handles GET /logs/user/{id}. The user may already be deleted;
// entries are still listed under the last known name captured at write time.
func (c *LogsController) ForUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	logs, err := c.services.Logging.GetAllLogsForUser(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to load logs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	usersName := "User ID " + strconv.FormatInt(id, 10)
	if user, err := c.services.User.GetUserByID(r.Context(), id); err == nil {
		usersName = user.FullName()
	} else if len(logs) > 0 && logs[len(logs)-1].LastKnownName != "" {
		usersName = logs[len(logs)-1].LastKnownName
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		UsersName   string
		Logs        []models.UserLog
	}{
		Title:       "Audit Logs for " + usersName,
		CurrentPage: "logs",
		UsersName:   usersName,
		Logs:        logs,
	}

	renderTemplate(w, "logs", "templates/logs.html", templateData)
}

// View handles GET /logs/{id}
func (c *LogsController) View(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid log ID", http.StatusBadRequest)
		return
	}

	entry, err := c.services.Logging.GetLogByID(r.Context(), id)
	if err != nil {
		if repositories.IsNotFound(err) {
			http.Error(w, "Log not found: "+err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load log: "+err.Error(), http.StatusInternalServerError)
		return
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Log         *models.UserLog
	}{
		Title:       "Log Entry",
		CurrentPage: "logs",
		Log:         entry,
	}

	renderTemplate(w, "log_view", "templates/log_view.html", templateData)
}

// Delete handles POST /logs/{id}/delete
func (c *LogsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "Invalid log ID", http.StatusBadRequest)
		return
	}

	if err := c.services.Logging.DeleteLogEntry(r.Context(), id); err != nil {
		if repositories.IsNotFound(err) {
			http.Error(w, "Log not found: "+err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete log: "+err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/logs", http.StatusSeeOther)
}
