package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"print-order-server/internal/domain"
	apperrors "print-order-server/pkg/errors"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService domain.OrderService
	logger       domain.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService domain.OrderService, logger domain.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, logger: logger}
}

// ListOrders returns the full order list in insertion order.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.List()
	if err != nil {
		respondError(w, h.logger, err, "Failed to load orders")
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// CreateOrder accepts an arbitrary JSON object, stamps it and appends it.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Create(fields)
	if err != nil {
		respondError(w, h.logger, err, "Failed to create order")
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// GetOrder returns a single order by ID.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID := vars["orderId"]
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "Order ID is required")
		return
	}

	order, err := h.orderService.Get(orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondError(w, h.logger, apperrors.NewNotFoundError("Order not found"), "Failed to get order")
			return
		}
		respondError(w, h.logger, err, "Failed to get order")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus overwrites the status field of an existing order.
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID := vars["orderId"]
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "Order ID is required")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, "Status is required")
		return
	}

	order, err := h.orderService.UpdateStatus(orderID, req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			respondError(w, h.logger, apperrors.NewNotFoundError("Order not found"), "Failed to update order")
			return
		}
		respondError(w, h.logger, err, "Failed to update order")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// ClearOrders empties the order store.
func (h *OrderHandler) ClearOrders(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.Clear(); err != nil {
		respondError(w, h.logger, err, "Failed to clear orders")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "All orders deleted"})
}
