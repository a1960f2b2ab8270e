package dto

// UploadResponse always carries the resolved public URL alongside the
// storage path, so no caller has to resolve a raw path itself.
type UploadResponse struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	URL  string `json:"url"`
}
