package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"print-order-server/internal/domain"
)

// PublicUploadPrefix is the route uploaded blobs are served under.
const PublicUploadPrefix = "/uploads/"

type uploadService struct {
	repo   domain.FileRepository
	blobs  domain.BlobStore
	logger domain.Logger
}

// NewUploadService creates the upload service.
func NewUploadService(repo domain.FileRepository, blobs domain.BlobStore, logger domain.Logger) domain.UploadService {
	return &uploadService{repo: repo, blobs: blobs, logger: logger}
}

// Store writes each uploaded file to the blob directory under a generated
// unique name and appends one metadata record per file. The blob write and
// the metadata append are not transactional: a failure after some blobs are
// written leaves them orphaned on disk.
func (s *uploadService) Store(files []*multipart.FileHeader) ([]domain.FileMeta, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoFilesUploaded
	}

	records := make([]domain.FileMeta, 0, len(files))
	for _, header := range files {
		src, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("open uploaded file %s: %w", header.Filename, err)
		}
		name := generateBlobName(header.Filename)
		serverPath, err := s.blobs.Save(name, src)
		src.Close()
		if err != nil {
			return nil, err
		}
		records = append(records, domain.FileMeta{
			Name:       header.Filename,
			Size:       header.Size,
			Type:       header.Header.Get("Content-Type"),
			Path:       PublicUploadPrefix + name,
			ServerPath: serverPath,
		})
	}

	if err := s.repo.Append(records); err != nil {
		return nil, err
	}
	s.logger.Info("Files uploaded", "count", len(records))
	return records, nil
}

// List returns all file metadata records in upload order.
func (s *uploadService) List() ([]domain.FileMeta, error) {
	return s.repo.List()
}

// Clear deletes every referenced blob best-effort, then empties the metadata
// store. A failed blob deletion is logged and skipped, never aborting the
// batch.
func (s *uploadService) Clear() error {
	records, err := s.repo.List()
	if err != nil {
		return err
	}
	for _, record := range records {
		if err := s.blobs.Remove(record.ServerPath); err != nil {
			s.logger.Warn("Failed to delete blob", "path", record.ServerPath, "error", err)
		}
	}
	if err := s.repo.Clear(); err != nil {
		return err
	}
	s.logger.Info("File store cleared", "count", len(records))
	return nil
}

// generateBlobName builds a collision-resistant blob name from the upload
// timestamp, a random suffix and the sanitized original filename.
func generateBlobName(original string) string {
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], sanitizeFilename(original))
}

// sanitizeFilename strips path components and replaces anything outside a
// conservative character set.
func sanitizeFilename(name string) string {
	base := strings.TrimSpace(filepath.Base(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "file"
	}
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
