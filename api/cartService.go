package api

import "github.com/ZeyadMahfouzz/supermarket-client/models"

type CartService struct {
	client *Client
}

func (s *CartService) Get() (models.Cart, error) {
	var cart models.Cart
	err := s.client.get("/cart", &cart)
	return cart, err
}

func (s *CartService) AddItem(itemID int64, quantity int) (models.Cart, error) {
	var cart models.Cart
	err := s.client.post("/cart/items", map[string]any{
		"itemId":   itemID,
		"quantity": quantity,
	}, &cart)
	return cart, err
}

func (s *CartService) UpdateItem(cartItemID int64, quantity int) (models.Cart, error) {
	var cart models.Cart
	err := s.client.put("/cart/items", map[string]any{
		"cartItemId": cartItemID,
		"quantity":   quantity,
	}, &cart)
	return cart, err
}

func (s *CartService) RemoveItem(cartItemID int64) (models.Cart, error) {
	var cart models.Cart
	err := s.client.delete("/cart/items", map[string]int64{"cartItemId": cartItemID}, &cart)
	return cart, err
}

func (s *CartService) Clear() (models.Cart, error) {
	var cart models.Cart
	err := s.client.delete("/cart", nil, &cart)
	return cart, err
}

// Checkout submits the composite payment request exactly once. No retry
// happens here; duplicate-submission protection is the cart store's latch.
func (s *CartService) Checkout(request models.CheckoutRequest) (models.CheckoutResponse, error) {
	var response models.CheckoutResponse
	err := s.client.post("/cart/checkout", request, &response)
	return response, err
}
