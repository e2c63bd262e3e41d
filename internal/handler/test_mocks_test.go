package handler

import (
	"errors"
	"mime/multipart"

	"print-order-server/internal/domain"
)

type testLogger struct{}

func newTestLogger() *testLogger { return &testLogger{} }

func (l *testLogger) Info(msg string, fields ...interface{})             {}
func (l *testLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *testLogger) Debug(msg string, fields ...interface{})            {}
func (l *testLogger) Warn(msg string, fields ...interface{})             {}

type mockOrderService struct {
	orders  []domain.Order
	listErr error
}

func newMockOrderService() *mockOrderService { return &mockOrderService{} }

func (m *mockOrderService) List() ([]domain.Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.orders, nil
}

func (m *mockOrderService) Create(fields map[string]interface{}) (*domain.Order, error) {
	order := domain.Order{ID: "k3x9-abcdef", Date: "2024-05-01T10:00:00Z", Status: domain.StatusPending, Fields: fields}
	m.orders = append(m.orders, order)
	return &order, nil
}

func (m *mockOrderService) Get(orderID string) (*domain.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID == orderID {
			return &m.orders[i], nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (m *mockOrderService) UpdateStatus(orderID, status string) (*domain.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID == orderID {
			m.orders[i].Status = status
			return &m.orders[i], nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (m *mockOrderService) Clear() error {
	m.orders = nil
	return nil
}

type mockUploadService struct {
	records []domain.FileMeta
}

func newMockUploadService() *mockUploadService { return &mockUploadService{} }

func (m *mockUploadService) Store(files []*multipart.FileHeader) ([]domain.FileMeta, error) {
	if len(files) == 0 {
		return nil, domain.ErrNoFilesUploaded
	}
	stored := make([]domain.FileMeta, 0, len(files))
	for i, f := range files {
		stored = append(stored, domain.FileMeta{
			Name: f.Filename,
			Size: f.Size,
			Type: f.Header.Get("Content-Type"),
			Path: "/uploads/" + string(rune('a'+i)) + "-" + f.Filename,
		})
	}
	m.records = append(m.records, stored...)
	return stored, nil
}

func (m *mockUploadService) List() ([]domain.FileMeta, error) {
	return m.records, nil
}

func (m *mockUploadService) Clear() error {
	m.records = nil
	return nil
}

type mockAuthService struct{}

func (m *mockAuthService) Login(username, password string) (string, error) {
	if username == "admin" && password == "printshop123" {
		return "test-token", nil
	}
	return "", domain.ErrInvalidCredentials
}

var errStoreBroken = errors.New("store broken")
