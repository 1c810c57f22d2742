package controllers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/services"
)

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	// Create a new template set with only the templates we need
	tmpl := template.New(templateName)
	tmpl.Funcs(template.FuncMap{
		"formatDate":     func(t time.Time) string { return models.FormatDate(t) },
		"formatDateTime": func(t time.Time) string { return models.FormatDateTime(t) },
		"actionLabel":    func(a models.UserLogAction) string { return a.Label() },
	})

	// Parse layout and page template
	_, err := tmpl.ParseFiles("templates/layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	// Set status code if not OK
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// Controllers holds all controller instances
type Controllers struct {
	Users *UsersController
	Logs  *LogsController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Users: NewUsersController(services),
		Logs:  NewLogsController(services),
	}
}
