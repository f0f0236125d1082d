package models

import "strings"

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipping   OrderStatus = "SHIPPING"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// ParseOrderStatus normalizes a status string to its canonical value. The
// backend order service uses PROCESSING and SHIPPING; CONFIRMED and SHIPPED
// are accepted as aliases since older order records carry them.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "PENDING":
		return OrderPending, true
	case "PROCESSING", "CONFIRMED":
		return OrderProcessing, true
	case "SHIPPING", "SHIPPED":
		return OrderShipping, true
	case "DELIVERED":
		return OrderDelivered, true
	case "CANCELLED":
		return OrderCancelled, true
	}
	return "", false
}

// Valid status progression: PENDING -> PROCESSING -> SHIPPING -> DELIVERED,
// with cancellation allowed from any non-terminal status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderProcessing || next == OrderCancelled
	case OrderProcessing:
		return next == OrderShipping || next == OrderCancelled
	case OrderShipping:
		return next == OrderDelivered || next == OrderCancelled
	}
	return false
}

// NextStatuses lists the statuses an admin may move the order to.
func (s OrderStatus) NextStatuses() []OrderStatus {
	var next []OrderStatus
	for _, candidate := range []OrderStatus{OrderProcessing, OrderShipping, OrderDelivered, OrderCancelled} {
		if s.CanTransitionTo(candidate) {
			next = append(next, candidate)
		}
	}
	return next
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type OrderItemDetails struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID            int64                       `json:"id"`
	UserID        int64                       `json:"userId"`
	Items         map[string]int              `json:"items,omitempty"`
	ItemDetails   map[string]OrderItemDetails `json:"itemDetails,omitempty"`
	OrderDate     string                      `json:"orderDate"`
	Status        OrderStatus                 `json:"status"`
	PaymentMethod string                      `json:"paymentMethod"`
	TotalAmount   float64                     `json:"totalAmount"`
}

// CanCancel reports whether the owning user may still cancel the order. Only
// pending orders are cancellable from the storefront; later stages belong to
// the admin flow.
func (o Order) CanCancel() bool {
	return o.Status == OrderPending
}

// AdminEditable reports whether an admin may change the order status.
func (o Order) AdminEditable() bool {
	return !o.Status.IsTerminal()
}
