package services

import (
	"github.com/blogem/user-management/repositories"
)

// Services holds all service instances
type Services struct {
	User     UserService
	Logging  UserLoggingService
	Workflow UserWorkflowService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	userService := NewUserService(repos.User)
	loggingService := NewUserLoggingService(repos.UserLog)

	return &Services{
		User:     userService,
		Logging:  loggingService,
		Workflow: NewUserWorkflowService(userService, loggingService),
	}
}
