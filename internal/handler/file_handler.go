package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"print-order-server/internal/domain"
	apperrors "print-order-server/pkg/errors"
)

// FileHandler handles upload and file-metadata HTTP requests
type FileHandler struct {
	uploadService domain.UploadService
	maxUploadSize int64
	logger        domain.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(uploadService domain.UploadService, maxUploadSize int64, logger domain.Logger) *FileHandler {
	return &FileHandler{
		uploadService: uploadService,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// Upload accepts a multipart submission under the "files" field, stores each
// blob and returns the new metadata records.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, "Request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "No files uploaded")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	files := multipartFiles(r.MultipartForm)
	records, err := h.uploadService.Store(files)
	if err != nil {
		if errors.Is(err, domain.ErrNoFilesUploaded) {
			respondError(w, h.logger, apperrors.NewValidationError("No files uploaded"), "Upload rejected")
			return
		}
		respondError(w, h.logger, err, "Failed to store uploaded files")
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// multipartFiles collects the uploaded file headers. The storefront posts
// under "files"; "files[]" is accepted for clients that bracket array fields.
func multipartFiles(form *multipart.Form) []*multipart.FileHeader {
	if headers := form.File["files"]; len(headers) > 0 {
		return headers
	}
	return form.File["files[]"]
}

// ListFiles returns the full metadata list in upload order.
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	records, err := h.uploadService.List()
	if err != nil {
		respondError(w, h.logger, err, "Failed to load files")
		return
	}
	if records == nil {
		records = []domain.FileMeta{}
	}
	writeJSON(w, http.StatusOK, records)
}

// ClearFiles deletes every blob best-effort and empties the metadata store.
func (h *FileHandler) ClearFiles(w http.ResponseWriter, r *http.Request) {
	if err := h.uploadService.Clear(); err != nil {
		respondError(w, h.logger, err, "Failed to clear files")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "All files deleted"})
}
