package services

// ServiceContainer holds the application services.
type ServiceContainer struct {
	AuthService  AuthService
	UserService  UserService
	TutorService TutorService
	EmailService EmailService
}
