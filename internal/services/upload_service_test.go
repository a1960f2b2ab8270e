package services

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"localpro_backend/internal/models"
	"localpro_backend/internal/repositories"
	"localpro_backend/internal/storage"
	"localpro_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUploadConfig() *UploadConfig {
	return &UploadConfig{
		MaxSize:      1024,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
	}
}

// makeFileHeader builds a real multipart.FileHeader the way gin would
// hand it to the handler.
func makeFileHeader(t *testing.T, fileName, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, fh, err := req.FormFile("file")
	require.NoError(t, err)
	return fh
}

func newUploadEnv(t *testing.T, repo repositories.UploadRepository) (UploadService, storage.Storage) {
	t.Helper()

	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: t.TempDir(),
		BaseURL:  "/api/v1/files",
	})
	require.NoError(t, err)
	return NewUploadService(repo, store, testUploadConfig()), store
}

func TestUpload_StoresUnderBucketAndUser(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, store := newUploadEnv(t, e.uploadRepo)
	user := e.createUser(t, "jane@test.com", "Jane")

	fh := makeFileHeader(t, "avatar.PNG", "image/png", []byte("png-bytes"))
	resp, err := svc.Upload(context.Background(), user.ID, models.BucketAvatars, fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Path, "avatars/"+user.ID+"/"))
	assert.Equal(t, "/api/v1/files/"+resp.Path, resp.URL)

	// generated name: {unix-nano}_{hex}{lowercased ext}
	fileName := resp.Path[strings.LastIndex(resp.Path, "/")+1:]
	assert.Regexp(t, regexp.MustCompile(`^\d+_[0-9a-f]{8}\.png$`), fileName)

	exists, err := store.Exists(context.Background(), resp.Path)
	require.NoError(t, err)
	assert.True(t, exists)

	// a bookkeeping row exists
	uploads, err := e.uploadRepo.FindByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, uploads, 1)
	assert.Equal(t, models.BucketAvatars, uploads[0].Bucket)
	assert.Equal(t, int64(len("png-bytes")), uploads[0].Size)
}

func TestUpload_SameFileTwiceGetsDistinctPaths(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, _ := newUploadEnv(t, e.uploadRepo)
	user := e.createUser(t, "jane@test.com", "Jane")

	first, err := svc.Upload(context.Background(), user.ID, models.BucketCovers,
		makeFileHeader(t, "cover.jpg", "image/jpeg", []byte("a")))
	require.NoError(t, err)
	second, err := svc.Upload(context.Background(), user.ID, models.BucketCovers,
		makeFileHeader(t, "cover.jpg", "image/jpeg", []byte("b")))
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
}

func TestUpload_UnknownBucketRejected(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, _ := newUploadEnv(t, e.uploadRepo)
	user := e.createUser(t, "jane@test.com", "Jane")

	_, err := svc.Upload(context.Background(), user.ID, "documents",
		makeFileHeader(t, "x.png", "image/png", []byte("a")))
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestUpload_TooLargeRejected(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, _ := newUploadEnv(t, e.uploadRepo)
	user := e.createUser(t, "jane@test.com", "Jane")

	big := bytes.Repeat([]byte("x"), 2048)
	_, err := svc.Upload(context.Background(), user.ID, models.BucketAvatars,
		makeFileHeader(t, "big.png", "image/png", big))
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeLimitExceeded, appErr.Code)
}

func TestUpload_DisallowedTypeRejected(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, _ := newUploadEnv(t, e.uploadRepo)
	user := e.createUser(t, "jane@test.com", "Jane")

	_, err := svc.Upload(context.Background(), user.ID, models.BucketAvatars,
		makeFileHeader(t, "payload.exe", "application/octet-stream", []byte("MZ")))
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

// failingUploadRepo simulates the bookkeeping insert failing after the
// object has already been stored.
type failingUploadRepo struct{}

func (r *failingUploadRepo) Create(*models.Upload) error { return errors.New("insert failed") }
func (r *failingUploadRepo) FindByID(string) (*models.Upload, error) {
	return nil, repositories.ErrUploadNotFound
}
func (r *failingUploadRepo) FindByUser(string) ([]models.Upload, error) { return nil, nil }
func (r *failingUploadRepo) Delete(string) error                        { return nil }

func TestUpload_FailedBookkeepingRemovesStoredObject(t *testing.T) {
	t.Parallel()

	basePath := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: basePath})
	require.NoError(t, err)
	svc := NewUploadService(&failingUploadRepo{}, store, testUploadConfig())

	_, err = svc.Upload(context.Background(), "user-1", models.BucketAvatars,
		makeFileHeader(t, "avatar.png", "image/png", []byte("png-bytes")))
	require.Error(t, err)

	// nothing may be left behind in the bucket
	var leftovers []string
	walkErr := filepath.WalkDir(basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			leftovers = append(leftovers, path)
		}
		return nil
	})
	require.NoError(t, walkErr)
	assert.Empty(t, leftovers)
}
