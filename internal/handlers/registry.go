package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	ProfileHandler  *ProfileHandler
	ServiceHandler  *ServiceHandler
	CategoryHandler *CategoryHandler
	UploadHandler   *UploadHandler
	FileHandler     *FileHandler
}
