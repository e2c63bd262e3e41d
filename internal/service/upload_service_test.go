package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"print-order-server/internal/domain"
	"print-order-server/internal/repository"
)

type namedFile struct {
	name    string
	content []byte
}

// makeFileHeaders builds real multipart.FileHeader values the way the HTTP
// layer would hand them over.
func makeFileHeaders(t *testing.T, files []namedFile) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(f.content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["files"]
}

func newTestUploadService(t *testing.T) (domain.UploadService, domain.FileRepository, string) {
	t.Helper()
	dir := t.TempDir()
	uploadDir := filepath.Join(dir, "uploads")
	repo := repository.NewFileRepository(dir, newTestLogger())
	blobs := repository.NewDiskBlobStore(uploadDir)
	return NewUploadService(repo, blobs, newTestLogger()), repo, uploadDir
}

func TestUploadService_StoreRejectsEmpty(t *testing.T) {
	svc, repo, _ := newTestUploadService(t)

	if _, err := svc.Store(nil); !errors.Is(err, domain.ErrNoFilesUploaded) {
		t.Fatalf("expected ErrNoFilesUploaded, got %v", err)
	}

	records, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("store altered by rejected upload: %d records", len(records))
	}
}

func TestUploadService_StoreWritesBlobsAndMetadata(t *testing.T) {
	svc, _, _ := newTestUploadService(t)

	headers := makeFileHeaders(t, []namedFile{
		{name: "quote.pdf", content: []byte("%PDF-fake")},
		{name: "letter.docx", content: bytes.Repeat([]byte("x"), 1024)},
	})

	records, err := svc.Store(headers)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name != "quote.pdf" || records[1].Name != "letter.docx" {
		t.Fatalf("upload order not preserved: %+v", records)
	}
	if records[0].Path == records[1].Path {
		t.Fatalf("generated paths collide: %s", records[0].Path)
	}
	for _, r := range records {
		if _, err := os.Stat(r.ServerPath); err != nil {
			t.Fatalf("blob missing for %s: %v", r.Name, err)
		}
		if r.Size == 0 {
			t.Fatalf("size not recorded for %s", r.Name)
		}
	}

	listed, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 listed records, got %d", len(listed))
	}
}

func TestUploadService_ClearSurvivesMissingBlob(t *testing.T) {
	svc, repo, _ := newTestUploadService(t)

	headers := makeFileHeaders(t, []namedFile{
		{name: "one.pdf", content: []byte("a")},
		{name: "two.pdf", content: []byte("b")},
	})
	records, err := svc.Store(headers)
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	// Simulate a blob vanishing out from under the store.
	if err := os.Remove(records[0].ServerPath); err != nil {
		t.Fatalf("remove blob: %v", err)
	}

	if err := svc.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	listed, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("metadata not cleared, got %d records", len(listed))
	}
	if _, err := os.Stat(records[1].ServerPath); !os.IsNotExist(err) {
		t.Fatalf("remaining blob not deleted")
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"report.pdf":        "report.pdf",
		"../../etc/passwd":  "passwd",
		"my order (1).docx": "my_order__1_.docx",
		"":                  "file",
	}
	for in, want := range cases {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
