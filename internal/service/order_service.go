package service

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"print-order-server/internal/domain"
)

const idSuffixLen = 6

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

type orderIDGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewOrderIDGenerator returns the production generator, seeded from the clock.
func NewOrderIDGenerator() domain.IDGenerator {
	return NewSeededOrderIDGenerator(time.Now().UnixNano())
}

// NewSeededOrderIDGenerator returns a generator with a fixed seed so tests can
// reproduce the random tiebreak.
func NewSeededOrderIDGenerator(seed int64) domain.IDGenerator {
	return &orderIDGenerator{rnd: rand.New(rand.NewSource(seed))}
}

// NewOrderID builds a time-based token: the current unix millisecond in
// base36 plus a short random suffix. Two creations in the same millisecond
// with the same suffix collide; the store accepts the duplicate.
func (g *orderIDGenerator) NewOrderID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	buf := make([]byte, 0, 16)
	buf = strconv.AppendInt(buf, time.Now().UnixMilli(), 36)
	buf = append(buf, '-')
	for i := 0; i < idSuffixLen; i++ {
		buf = append(buf, base36Alphabet[g.rnd.Intn(len(base36Alphabet))])
	}
	return string(buf)
}

type orderService struct {
	repo   domain.OrderRepository
	ids    domain.IDGenerator
	logger domain.Logger
}

// NewOrderService creates the order service.
func NewOrderService(repo domain.OrderRepository, ids domain.IDGenerator, logger domain.Logger) domain.OrderService {
	return &orderService{repo: repo, ids: ids, logger: logger}
}

// List returns all orders in insertion order.
func (s *orderService) List() ([]domain.Order, error) {
	return s.repo.List()
}

// Create stamps the identifier, timestamp and initial status onto the
// client-supplied fields and appends the order. The fields themselves are
// stored as received; any reserved keys the client sent are overwritten by
// the stamped values.
func (s *orderService) Create(fields map[string]interface{}) (*domain.Order, error) {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	order := domain.Order{
		ID:     s.ids.NewOrderID(),
		Date:   time.Now().UTC().Format(time.RFC3339),
		Status: domain.StatusPending,
		Fields: fields,
	}
	if err := s.repo.Insert(order); err != nil {
		return nil, err
	}
	s.logger.Info("Order created", "order_id", order.ID)
	return &order, nil
}

// Get returns the order with the given ID.
func (s *orderService) Get(orderID string) (*domain.Order, error) {
	return s.repo.Get(orderID)
}

// UpdateStatus overwrites the status of an existing order.
func (s *orderService) UpdateStatus(orderID, status string) (*domain.Order, error) {
	order, err := s.repo.UpdateStatus(orderID, status)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Order status updated", "order_id", orderID, "status", status)
	return order, nil
}

// Clear empties the order store. Uploaded files are untouched.
func (s *orderService) Clear() error {
	return s.repo.Clear()
}
