package apperrors

import "net/http"

// Upload failures. The video message mirrors the one existing clients
// already display.
var (
	ErrInvalidVideoType = New(CodeInvalidFileType, "upload", "Only MP4, WebM, or OGG video files are allowed", http.StatusBadRequest)
	ErrVideoTooLarge    = New(CodeFileTooLarge, "upload", "Video file exceeds the size limit", http.StatusBadRequest)
	ErrTooManyFiles     = New(CodeTooManyFiles, "upload", "Too many files in request", http.StatusBadRequest)
)
