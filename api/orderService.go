package api

import "github.com/ZeyadMahfouzz/supermarket-client/models"

type OrderService struct {
	client *Client
}

// History returns the calling user's own orders.
func (s *OrderService) History() ([]models.Order, error) {
	var orders []models.Order
	if err := s.client.get("/orders/history", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) Details(orderID int64) (models.Order, error) {
	var order models.Order
	err := s.client.post("/orders/details", map[string]int64{"orderId": orderID}, &order)
	return order, err
}

// All returns every order in the system. The backend rejects this for
// non-admin callers.
func (s *OrderService) All() ([]models.Order, error) {
	var orders []models.Order
	if err := s.client.get("/orders/all", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) ByStatus(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := s.client.post("/orders/status", map[string]string{"status": string(status)}, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) UpdateStatus(orderID int64, status models.OrderStatus) error {
	return s.client.patch("/orders/status/update", map[string]any{
		"orderId": orderID,
		"status":  string(status),
	}, nil)
}

func (s *OrderService) Cancel(orderID int64) error {
	return s.client.delete("/orders/cancel", map[string]int64{"orderId": orderID}, nil)
}
