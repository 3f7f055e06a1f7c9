package services

// ServiceContainer groups the services the handler layer depends on.
type ServiceContainer struct {
	AuthService    AuthService
	TrainerService TrainerService
	StudentService StudentService
	VideoService   VideoService
	UploadService  UploadService
}
