package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_CreateOrderSendsFieldsAndDecodesStamp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var fields map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		fields["orderId"] = "k3x9-abcdef"
		fields["orderDate"] = "2024-05-01T10:00:00Z"
		fields["status"] = "pending"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(fields)
	}))
	defer server.Close()

	order, err := New(server.URL).CreateOrder(context.Background(), map[string]interface{}{"name": "Ada"})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.ID != "k3x9-abcdef" {
		t.Fatalf("expected stamped ID, got %s", order.ID)
	}
	if order.Status != "pending" {
		t.Fatalf("expected status pending, got %s", order.Status)
	}
	if order.Fields["name"] != "Ada" {
		t.Fatalf("field not round-tripped: %v", order.Fields)
	}
}

func TestClient_FixedErrorMessageOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := New(server.URL).ListOrders(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "failed to fetch orders") {
		t.Fatalf("expected fixed endpoint message, got %v", err)
	}
}

func TestClient_UploadPostsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		headers := r.MultipartForm.File["files"]
		if len(headers) != 2 {
			t.Fatalf("expected 2 files, got %d", len(headers))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"a.pdf"},{"name":"b.pdf"}]`))
	}))
	defer server.Close()

	records, err := New(server.URL).Upload(context.Background(), []UploadFile{
		{Name: "a.pdf", Content: strings.NewReader("a")},
		{Name: "b.pdf", Content: strings.NewReader("b")},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestClient_LoginUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	if _, err := New(server.URL).Login(context.Background(), "admin", "wrong"); err == nil {
		t.Fatal("expected an error for rejected credentials")
	}
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"OK","timestamp":"2024-05-01T10:00:00Z"}`))
	}))
	defer server.Close()

	status, err := New(server.URL).Health(context.Background())
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if status.Status != "OK" {
		t.Fatalf("expected OK, got %s", status.Status)
	}
}
