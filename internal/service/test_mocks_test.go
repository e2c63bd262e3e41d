package service

import (
	"print-order-server/internal/domain"
)

type testLogger struct{}

func newTestLogger() *testLogger { return &testLogger{} }

func (l *testLogger) Info(msg string, fields ...interface{})             {}
func (l *testLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *testLogger) Debug(msg string, fields ...interface{})            {}
func (l *testLogger) Warn(msg string, fields ...interface{})             {}

// mockOrderRepo keeps orders in memory but mirrors the store's semantics:
// appends accept duplicate IDs, scans are linear.
type mockOrderRepo struct {
	orders []domain.Order
}

func newMockOrderRepo() *mockOrderRepo { return &mockOrderRepo{} }

func (m *mockOrderRepo) List() ([]domain.Order, error) {
	return m.orders, nil
}

func (m *mockOrderRepo) Insert(order domain.Order) error {
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderRepo) Get(orderID string) (*domain.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID == orderID {
			return &m.orders[i], nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (m *mockOrderRepo) UpdateStatus(orderID, status string) (*domain.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID == orderID {
			m.orders[i].Status = status
			return &m.orders[i], nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (m *mockOrderRepo) Clear() error {
	m.orders = nil
	return nil
}

// fixedIDGenerator always returns the same token, standing in for two
// creations landing in the same millisecond with the same random tiebreak.
type fixedIDGenerator struct {
	id string
}

func (g *fixedIDGenerator) NewOrderID() string { return g.id }
