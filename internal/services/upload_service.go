package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"localpro_backend/internal/logger"
	"localpro_backend/internal/models"
	"localpro_backend/internal/repositories"
	"localpro_backend/internal/services/dto"
	"localpro_backend/internal/storage"
	"localpro_backend/pkg/apperrors"
)

// UploadConfig constrains what may be uploaded.
type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

var allowedBuckets = map[string]bool{
	models.BucketAvatars:       true,
	models.BucketCovers:        true,
	models.BucketServiceImages: true,
}

type UploadService interface {
	Upload(ctx context.Context, userID, bucket string, file *multipart.FileHeader) (*dto.UploadResponse, error)
	ResolveURL(ctx context.Context, storagePath string) (string, error)
}

type UploadServiceImpl struct {
	uploadRepo repositories.UploadRepository
	storage    storage.Storage
	config     *UploadConfig
}

func NewUploadService(
	uploadRepo repositories.UploadRepository,
	store storage.Storage,
	config *UploadConfig,
) UploadService {
	return &UploadServiceImpl{
		uploadRepo: uploadRepo,
		storage:    store,
		config:     config,
	}
}

// Upload stores the file under {bucket}/{userID}/{generatedName} and
// returns the storage path together with its resolved public URL. On any
// failure nothing is committed: a stored object whose bookkeeping row
// failed is removed again.
func (s *UploadServiceImpl) Upload(ctx context.Context, userID, bucket string, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if !allowedBuckets[bucket] {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown bucket: %s", bucket))
	}

	if err := s.validateFile(file); err != nil {
		return nil, err
	}

	mimeType := file.Header.Get("Content-Type")
	fileName := generateFileName(file.Filename)
	storagePath := path.Join(bucket, userID, fileName)

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.NewBadRequestError("failed to read uploaded file")
	}
	defer src.Close()

	if err := s.storage.Save(ctx, storagePath, src, mimeType); err != nil {
		return nil, apperrors.StorageError(err)
	}

	upload := &models.Upload{
		UserID:   userID,
		Bucket:   bucket,
		Path:     storagePath,
		MimeType: mimeType,
		Size:     file.Size,
	}
	if err := s.uploadRepo.Create(upload); err != nil {
		// do not leave an orphaned object behind
		if delErr := s.storage.Delete(ctx, storagePath); delErr != nil {
			logger.WithError(delErr).Error("failed to roll back stored object", "path", storagePath)
		}
		return nil, apperrors.DatabaseError(err)
	}

	url, err := s.storage.GetURL(ctx, storagePath)
	if err != nil {
		return nil, apperrors.StorageError(err)
	}

	return &dto.UploadResponse{
		ID:   upload.ID,
		Path: storagePath,
		URL:  url,
	}, nil
}

// ResolveURL maps a storage path to its public URL.
func (s *UploadServiceImpl) ResolveURL(ctx context.Context, storagePath string) (string, error) {
	url, err := s.storage.GetURL(ctx, storagePath)
	if err != nil {
		return "", apperrors.StorageError(err)
	}
	return url, nil
}

func (s *UploadServiceImpl) validateFile(file *multipart.FileHeader) error {
	if file.Size > s.config.MaxSize {
		return apperrors.New(
			apperrors.CodeLimitExceeded,
			"upload",
			fmt.Sprintf("file exceeds the maximum size of %d bytes", s.config.MaxSize),
			413,
		)
	}

	mimeType := file.Header.Get("Content-Type")
	for _, allowed := range s.config.AllowedTypes {
		if mimeType == allowed {
			return nil
		}
	}
	return apperrors.NewBadRequestError(fmt.Sprintf("file type %s is not allowed", mimeType))
}

// generateFileName builds a collision-resistant name keeping the
// original extension: {unix-nano}_{random-hex}{ext}.
func generateFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), secureRandomString(8), ext)
}

func secureRandomString(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(bytes)[:length]
}
