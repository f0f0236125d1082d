package store

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/ZeyadMahfouzz/supermarket-client/api"
	"github.com/ZeyadMahfouzz/supermarket-client/models"
	"github.com/ZeyadMahfouzz/supermarket-client/stock"
)

// CartStore mirrors the server-side cart. Every successful mutation replaces
// the held cart wholesale with the server's representation; nothing is
// patched speculatively, so the last response received always wins.
type CartStore struct {
	api     *api.Client
	session *SessionStore
	stock   *stock.Checker

	mu   sync.RWMutex
	cart models.Cart

	// checkingOut is the submit latch: at most one checkout may be in
	// flight per store.
	checkingOut atomic.Bool
}

func NewCartStore(client *api.Client, session *SessionStore, checker *stock.Checker) *CartStore {
	return &CartStore{api: client, session: session, stock: checker}
}

func (c *CartStore) Cart() models.Cart {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cart
}

func (c *CartStore) ItemCount() int {
	return c.Cart().ItemCount()
}

// Fetch refreshes the held cart from the backend. Without an active session
// it is a no-op and clears nothing.
func (c *CartStore) Fetch() Result {
	if !c.session.IsAuthenticated() {
		return Result{Success: true}
	}
	cart, err := c.api.Cart.Get()
	if err != nil {
		return failure(err.Error())
	}
	c.replace(cart)
	return Result{Success: true}
}

func (c *CartStore) AddItem(itemID int64, quantity int) Result {
	if quantity < 1 {
		return failure("Quantity must be at least 1")
	}
	if result, rejected := c.advisoryReject(itemID, quantity); rejected {
		return result
	}

	cart, err := c.api.Cart.AddItem(itemID, quantity)
	if err != nil {
		return failure(err.Error())
	}
	c.replace(cart)
	return Result{Success: true}
}

func (c *CartStore) UpdateQuantity(cartItemID int64, quantity int) Result {
	if quantity < 1 {
		return failure("Quantity must be at least 1")
	}
	if line, ok := c.Cart().Line(cartItemID); ok {
		if result, rejected := c.advisoryReject(line.ItemID, quantity); rejected {
			return result
		}
	}

	cart, err := c.api.Cart.UpdateItem(cartItemID, quantity)
	if err != nil {
		return failure(err.Error())
	}
	c.replace(cart)
	return Result{Success: true}
}

func (c *CartStore) RemoveItem(cartItemID int64) Result {
	cart, err := c.api.Cart.RemoveItem(cartItemID)
	if err != nil {
		return failure(err.Error())
	}
	c.replace(cart)
	return Result{Success: true}
}

func (c *CartStore) Clear() Result {
	cart, err := c.api.Cart.Clear()
	if err != nil {
		return failure(err.Error())
	}
	c.replace(cart)
	return Result{Success: true}
}

// advisoryReject asks the stock checker whether the requested quantity can
// be satisfied. A failed advisory read never blocks the mutation; the
// backend enforces stock for real.
func (c *CartStore) advisoryReject(itemID int64, quantity int) (Result, bool) {
	available, err := c.stock.CheckStock(itemID)
	if err != nil {
		return Result{}, false
	}
	if quantity > available {
		return failure(fmt.Sprintf("Only %d available", available)), true
	}
	return Result{}, false
}

func (c *CartStore) replace(cart models.Cart) {
	c.mu.Lock()
	c.cart = cart
	c.mu.Unlock()
}

// CheckoutResult carries the order-confirmation context on success and a
// user-presentable message on failure.
type CheckoutResult struct {
	Success       bool
	Message       string
	OrderID       int64
	TransactionID string
	TotalAmount   float64
	PaymentMethod string
}

// Checkout submits the payment request exactly once. The latch guarantees a
// second activation while one submission is in flight makes no network call.
// On failure the held cart is left untouched so the user can edit the form
// and resubmit.
func (c *CartStore) Checkout(request models.CheckoutRequest) CheckoutResult {
	if !c.checkingOut.CompareAndSwap(false, true) {
		return CheckoutResult{Message: "A payment is already in progress", PaymentMethod: request.PaymentMethod}
	}
	defer c.checkingOut.Store(false)

	totalBefore := c.Cart().TotalPrice

	response, err := c.api.Cart.Checkout(request)
	if err != nil {
		return CheckoutResult{Message: err.Error(), PaymentMethod: request.PaymentMethod}
	}
	if !response.Completed() {
		message := response.Message
		if message == "" {
			message = "Payment failed"
		}
		return CheckoutResult{Message: message, PaymentMethod: request.PaymentMethod}
	}

	// The refreshed cart is expected to come back empty; a refresh failure
	// does not undo a completed checkout.
	if result := c.Fetch(); !result.Success {
		log.Println("Cart refresh after checkout failed:", result.Message)
	}

	total := response.TotalAmount
	if total == 0 {
		total = totalBefore
	}
	return CheckoutResult{
		Success:       true,
		Message:       response.Message,
		OrderID:       response.OrderID,
		TransactionID: response.TransactionID,
		TotalAmount:   total,
		PaymentMethod: request.PaymentMethod,
	}
}
