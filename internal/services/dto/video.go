package dto

// UploadVideoRequest is bound from the multipart form accompanying the
// "video" file part.
type UploadVideoRequest struct {
	Email string `form:"email" json:"email" validate:"required,email"`
	Title string `form:"title" json:"title"`
}

// DeleteVideoRequest targets a video by its stored URL. Email is
// optional; when absent the caller's own student record is used.
type DeleteVideoRequest struct {
	Email string `json:"email"`
	URL   string `json:"url" validate:"required"`
}
