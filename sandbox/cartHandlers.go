package sandbox

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ZeyadMahfouzz/supermarket-client/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type addCartItemRequest struct {
	ItemID   int64 `json:"itemId" binding:"required"`
	Quantity int   `json:"quantity" binding:"required"`
}

type updateCartItemRequest struct {
	CartItemID int64 `json:"cartItemId" binding:"required"`
	Quantity   int   `json:"quantity" binding:"required"`
}

type removeCartItemRequest struct {
	CartItemID int64 `json:"cartItemId" binding:"required"`
}

// cartResponse assembles the wire cart for a user. Prices and subtotals are
// computed here, never trusted from the client. Callers must hold s.mu.
func (s *Server) cartResponse(userID int64) models.Cart {
	cart := models.Cart{CartID: userID, UserID: userID, Items: []models.CartItem{}}
	for _, line := range s.carts[userID] {
		item, exists := s.items[line.ItemID]
		if !exists {
			continue
		}
		subtotal := item.Price * float64(line.Quantity)
		cart.Items = append(cart.Items, models.CartItem{
			CartItemID: line.CartItemID,
			ItemID:     line.ItemID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			Quantity:   line.Quantity,
			Subtotal:   subtotal,
			ImageUrl:   item.ImageUrl,
		})
		cart.TotalPrice += subtotal
	}
	return cart
}

func (s *Server) getCart(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sendJSONResponse(ctx, http.StatusOK, s.cartResponse(currentUserID(ctx)))
}

func (s *Server) addCartItem(ctx *gin.Context) {
	var req addCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Quantity < 1 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	userID := currentUserID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[req.ItemID]
	if !exists {
		sendErrorResponse(ctx, http.StatusNotFound, msgItemNotFound)
		return
	}

	lines := s.carts[userID]
	requested := req.Quantity
	for _, line := range lines {
		if line.ItemID == req.ItemID {
			requested += line.Quantity
		}
	}
	if requested > item.Quantity {
		sendErrorResponse(ctx, http.StatusBadRequest,
			fmt.Sprintf("Insufficient stock for %s. Only %d available", item.Name, item.Quantity))
		return
	}

	merged := false
	for i := range lines {
		if lines[i].ItemID == req.ItemID {
			lines[i].Quantity += req.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.nextCartItemID++
		lines = append(lines, cartLine{CartItemID: s.nextCartItemID, ItemID: req.ItemID, Quantity: req.Quantity})
	}
	s.carts[userID] = lines

	sendJSONResponse(ctx, http.StatusOK, s.cartResponse(userID))
}

func (s *Server) updateCartItem(ctx *gin.Context) {
	var req updateCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Quantity < 1 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	userID := currentUserID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].CartItemID != req.CartItemID {
			continue
		}
		item, exists := s.items[lines[i].ItemID]
		if !exists {
			sendErrorResponse(ctx, http.StatusNotFound, msgItemNotFound)
			return
		}
		if req.Quantity > item.Quantity {
			sendErrorResponse(ctx, http.StatusBadRequest,
				fmt.Sprintf("Insufficient stock for %s. Only %d available", item.Name, item.Quantity))
			return
		}
		lines[i].Quantity = req.Quantity
		sendJSONResponse(ctx, http.StatusOK, s.cartResponse(userID))
		return
	}

	sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
}

func (s *Server) removeCartItem(ctx *gin.Context) {
	var req removeCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	userID := currentUserID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	for i := range lines {
		if lines[i].CartItemID == req.CartItemID {
			s.carts[userID] = append(lines[:i], lines[i+1:]...)
			sendJSONResponse(ctx, http.StatusOK, s.cartResponse(userID))
			return
		}
	}

	sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
}

func (s *Server) clearCart(ctx *gin.Context) {
	userID := currentUserID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = nil
	sendJSONResponse(ctx, http.StatusOK, s.cartResponse(userID))
}

func (s *Server) checkout(ctx *gin.Context) {
	var req models.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.PaymentMethod == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	userID := currentUserID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	if len(lines) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartEmpty)
		return
	}

	for _, line := range lines {
		item, exists := s.items[line.ItemID]
		if !exists {
			sendErrorResponse(ctx, http.StatusNotFound, msgItemNotFound)
			return
		}
		if line.Quantity > item.Quantity {
			sendErrorResponse(ctx, http.StatusBadRequest,
				fmt.Sprintf("Insufficient stock for %s. Only %d available", item.Name, item.Quantity))
			return
		}
	}

	if message, ok := validatePayment(req); !ok {
		sendErrorResponse(ctx, http.StatusPaymentRequired, message)
		return
	}

	var total float64
	order := &models.Order{
		UserID:        userID,
		Items:         make(map[string]int, len(lines)),
		ItemDetails:   make(map[string]models.OrderItemDetails, len(lines)),
		OrderDate:     time.Now().Format(time.RFC3339),
		Status:        models.OrderPending,
		PaymentMethod: req.PaymentMethod,
	}
	for _, line := range lines {
		item := s.items[line.ItemID]
		item.Quantity -= line.Quantity
		key := strconv.FormatInt(line.ItemID, 10)
		order.Items[key] = line.Quantity
		order.ItemDetails[key] = models.OrderItemDetails{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: line.Quantity,
		}
		total += item.Price * float64(line.Quantity)
	}
	order.TotalAmount = total

	s.nextOrderID++
	order.ID = s.nextOrderID
	s.orders[order.ID] = order
	s.carts[userID] = nil
	s.nextPaymentID++

	sendJSONResponse(ctx, http.StatusOK, models.CheckoutResponse{
		Message:       "Checkout completed successfully",
		OrderID:       order.ID,
		PaymentID:     s.nextPaymentID,
		TransactionID: uuid.NewString(),
		PaymentStatus: "COMPLETED",
		TotalAmount:   total,
	})
}

// validatePayment simulates the payment processor. The payload matching the
// discriminator must be present, and card numbers ending in 0000 are
// declined so integration tests have a deterministic failure path.
func validatePayment(req models.CheckoutRequest) (string, bool) {
	switch req.PaymentMethod {
	case "CREDIT_CARD":
		if req.CreditCardPayment == nil {
			return "Missing credit card details", false
		}
		if strings.HasSuffix(req.CreditCardPayment.CardNumber, "0000") {
			return "Payment was declined by the card issuer", false
		}
	case "DEBIT_CARD":
		if req.DebitCardPayment == nil {
			return "Missing debit card details", false
		}
		if strings.HasSuffix(req.DebitCardPayment.CardNumber, "0000") {
			return "Payment was declined by the card issuer", false
		}
	case "MOBILE_PAYMENT":
		if req.MobilePayment == nil {
			return "Missing mobile payment details", false
		}
	case "CASH":
		if req.CashPayment == nil || !req.CashPayment.Confirmed {
			return "Cash payment must be confirmed", false
		}
	default:
		return "Unsupported payment method: " + req.PaymentMethod, false
	}
	return "", true
}
