package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"collection-backend/internal/infrastructure/storage"
	"collection-backend/internal/shared/apperror"
	"collection-backend/pkg/logger"
)

// File is one multipart image part, read fully into memory.
type File struct {
	Name        string
	Data        []byte
	ContentType string
}

// PictureService moves picture bytes in and out of object storage on
// behalf of the authenticated caller.
type PictureService interface {
	Upload(ctx context.Context, ownerID uuid.UUID, files []File) ([]string, error)
	Delete(ctx context.Context, ownerID uuid.UUID, filenames []string) ([]string, error)
}

type pictureService struct {
	storage storage.ObjectStorage
}

func NewPictureService(storage storage.ObjectStorage) PictureService {
	return &pictureService{storage: storage}
}

func objectKey(ownerID uuid.UUID, filename string) string {
	return fmt.Sprintf("images/%s/%s", ownerID, filename)
}

// Upload stores every file under images/{ownerId}/{filename} and returns
// the public URLs in arrival order. Re-using a filename overwrites the
// previous object. On any failure the objects already uploaded in this
// request are deleted before the error is returned.
func (s *pictureService) Upload(ctx context.Context, ownerID uuid.UUID, files []File) ([]string, error) {
	urls := make([]string, 0, len(files))
	uploaded := make([]string, 0, len(files))

	for _, file := range files {
		key := objectKey(ownerID, file.Name)
		url, err := s.storage.Upload(ctx, key, file.Data, file.ContentType)
		if err != nil {
			s.compensate(ctx, uploaded)
			return nil, apperror.Storage("failed to upload image", err)
		}
		uploaded = append(uploaded, key)
		urls = append(urls, url)
	}

	return urls, nil
}

// compensate removes objects written earlier in a failed request. A
// failed cleanup is only logged; the caller already gets the original
// upload error.
func (s *pictureService) compensate(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			logger.Warn("failed to clean up uploaded image", map[string]interface{}{"key": key})
		}
	}
}

// Delete removes the named objects and returns their former URLs.
func (s *pictureService) Delete(ctx context.Context, ownerID uuid.UUID, filenames []string) ([]string, error) {
	urls := make([]string, 0, len(filenames))

	for _, name := range filenames {
		key := objectKey(ownerID, name)
		if err := s.storage.Delete(ctx, key); err != nil {
			return nil, apperror.Storage("failed to delete image", err)
		}
		urls = append(urls, s.storage.URL(key))
	}

	return urls, nil
}
