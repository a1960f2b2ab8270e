package services

import (
	"localpro_backend/internal/email"
)

// ServiceContainer holds every service the application wires up.
type ServiceContainer struct {
	AuthService     AuthService
	ProfileService  ProfileService
	ServiceService  ServiceService
	CategoryService CategoryService
	ReviewService   ReviewService
	UploadService   UploadService
	EmailService    email.Provider
}
