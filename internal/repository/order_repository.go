package repository

import (
	"fmt"
	"path/filepath"

	"print-order-server/internal/domain"
)

const ordersFile = "orders.json"

type orderRepository struct {
	path   string
	logger domain.Logger
}

// NewOrderRepository creates an order store backed by <dataDir>/orders.json.
func NewOrderRepository(dataDir string, logger domain.Logger) domain.OrderRepository {
	return &orderRepository{
		path:   filepath.Join(dataDir, ordersFile),
		logger: logger,
	}
}

// List returns all orders in insertion order.
func (r *orderRepository) List() ([]domain.Order, error) {
	orders, err := readArray[domain.Order](r.path)
	if err != nil {
		return nil, fmt.Errorf("read orders store: %w", err)
	}
	return orders, nil
}

// Insert appends the order and rewrites the store. Duplicate IDs are not
// rejected; uniqueness is probabilistic, supplied by the ID generator.
func (r *orderRepository) Insert(order domain.Order) error {
	orders, err := readArray[domain.Order](r.path)
	if err != nil {
		return fmt.Errorf("read orders store: %w", err)
	}
	orders = append(orders, order)
	if err := writeArray(r.path, orders); err != nil {
		return fmt.Errorf("write orders store: %w", err)
	}
	return nil
}

// Get scans for the order with the given ID.
func (r *orderRepository) Get(orderID string) (*domain.Order, error) {
	orders, err := readArray[domain.Order](r.path)
	if err != nil {
		return nil, fmt.Errorf("read orders store: %w", err)
	}
	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

// UpdateStatus overwrites the status of the matching order in place and
// rewrites the store.
func (r *orderRepository) UpdateStatus(orderID, status string) (*domain.Order, error) {
	orders, err := readArray[domain.Order](r.path)
	if err != nil {
		return nil, fmt.Errorf("read orders store: %w", err)
	}
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			if err := writeArray(r.path, orders); err != nil {
				return nil, fmt.Errorf("write orders store: %w", err)
			}
			return &orders[i], nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

// Clear replaces the store with an empty list. Associated files are untouched.
func (r *orderRepository) Clear() error {
	if err := writeArray(r.path, []domain.Order{}); err != nil {
		return fmt.Errorf("clear orders store: %w", err)
	}
	return nil
}
