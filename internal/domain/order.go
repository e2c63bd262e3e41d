package domain

import "encoding/json"

// Reserved order fields stamped by the server at creation time. Everything
// else the client submits is passed through untouched.
const (
	OrderIDField     = "orderId"
	OrderDateField   = "orderDate"
	OrderStatusField = "status"
)

// StatusPending is the initial status of every new order. The status set is
// open-ended; the store accepts any non-empty string on update.
const StatusPending = "pending"

// Order is a customer print request. ID, Date and Status are stamped by the
// server; Fields carries whatever the client submitted (name, contact info,
// page range, selected file references) without validation or interpretation.
type Order struct {
	ID     string
	Date   string
	Status string
	Fields map[string]interface{}
}

// MarshalJSON flattens the stamped fields and the pass-through fields into a
// single JSON object, matching the shape persisted in orders.json.
func (o Order) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(o.Fields)+3)
	for k, v := range o.Fields {
		m[k] = v
	}
	m[OrderIDField] = o.ID
	m[OrderDateField] = o.Date
	m[OrderStatusField] = o.Status
	return json.Marshal(m)
}

// UnmarshalJSON splits the stamped fields back out of the flat object.
func (o *Order) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if v, ok := m[OrderIDField].(string); ok {
		o.ID = v
	}
	if v, ok := m[OrderDateField].(string); ok {
		o.Date = v
	}
	if v, ok := m[OrderStatusField].(string); ok {
		o.Status = v
	}
	delete(m, OrderIDField)
	delete(m, OrderDateField)
	delete(m, OrderStatusField)
	o.Fields = m
	return nil
}
