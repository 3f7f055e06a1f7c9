package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"time"

	"academy_backend/internal/storage"
	"academy_backend/pkg/apperrors"
)

// SavedFile describes one file an upload pipeline accepted and wrote.
type SavedFile struct {
	Field    string `json:"field"`
	Filename string `json:"filename"`
	Path     string `json:"path"` // storage-relative
	URL      string `json:"url"`  // public
}

// UploadService is the gate every incoming file passes through. Two
// pipelines with deliberately different failure modes:
//
//   - images: parts with a disallowed MIME type are silently excluded
//     from the result, only the per-request file count is a hard error;
//   - videos: a disallowed type or an oversize file fails the whole
//     request.
//
// The asymmetry is inherited contract, not an accident; clients depend
// on image registration succeeding with partial attachments.
type UploadService interface {
	SaveImages(ctx context.Context, form *multipart.Form, fields ...string) (map[string][]SavedFile, error)
	SaveVideo(ctx context.Context, file *multipart.FileHeader) (*SavedFile, error)
}

type UploadConfig struct {
	ImageTypes    []string
	VideoTypes    []string
	MaxImageFiles int   // per request, across all image fields
	MaxVideoSize  int64 // bytes
}

type uploadService struct {
	storage storage.Storage
	config  UploadConfig
}

func NewUploadService(store storage.Storage, config UploadConfig) UploadService {
	return &uploadService{
		storage: store,
		config:  config,
	}
}

func (s *uploadService) SaveImages(ctx context.Context, form *multipart.Form, fields ...string) (map[string][]SavedFile, error) {
	if form == nil {
		return map[string][]SavedFile{}, nil
	}

	total := 0
	for _, field := range fields {
		total += len(form.File[field])
	}
	if total > s.config.MaxImageFiles {
		return nil, apperrors.ErrTooManyFiles
	}

	saved := make(map[string][]SavedFile)
	for _, field := range fields {
		for _, fh := range form.File[field] {
			if !contains(s.config.ImageTypes, fh.Header.Get("Content-Type")) {
				// Dropped, not an error: the result set simply does
				// not include this part.
				continue
			}

			sf, err := s.write(ctx, field, fh, "")
			if err != nil {
				return nil, err
			}
			saved[field] = append(saved[field], *sf)
		}
	}
	return saved, nil
}

func (s *uploadService) SaveVideo(ctx context.Context, file *multipart.FileHeader) (*SavedFile, error) {
	if !contains(s.config.VideoTypes, file.Header.Get("Content-Type")) {
		return nil, apperrors.ErrInvalidVideoType
	}
	if file.Size > s.config.MaxVideoSize {
		return nil, apperrors.ErrVideoTooLarge
	}

	return s.write(ctx, "video", file, "videos")
}

// write stores one file under a generated name inside subdir ("" for
// the uploads root).
func (s *uploadService) write(ctx context.Context, field string, fh *multipart.FileHeader, subdir string) (*SavedFile, error) {
	filename := generateFilename(field, fh.Filename)
	storagePath := filename
	if subdir != "" {
		storagePath = filepath.Join(subdir, filename)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	if err := s.storage.Save(ctx, storagePath, src); err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to save file to storage: %w", err))
	}

	return &SavedFile{
		Field:    field,
		Filename: filename,
		Path:     storagePath,
		URL:      s.storage.URL(storagePath),
	}, nil
}

// generateFilename keeps the historical naming scheme:
// {millisecond-timestamp}-{field}{original extension}. Two files with
// the same field name in the same millisecond collide; accepted risk,
// stored data already uses these names.
func generateFilename(field, original string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), field, path.Ext(original))
}

func contains(list []string, item string) bool {
	for _, s := range list {
		if s == item {
			return true
		}
	}
	return false
}
