package sandbox

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/ZeyadMahfouzz/supermarket-client/models"
	"github.com/gin-gonic/gin"
)

type orderIDRequest struct {
	OrderID int64 `json:"orderId" binding:"required"`
}

type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type updateOrderStatusRequest struct {
	OrderID int64  `json:"orderId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// collectOrders returns the orders visible to the caller, newest first.
// Callers must hold s.mu.
func (s *Server) collectOrders(userID int64, admin bool, filter *models.OrderStatus) []models.Order {
	orders := make([]models.Order, 0)
	for _, order := range s.orders {
		if !admin && order.UserID != userID {
			continue
		}
		if filter != nil && order.Status != *filter {
			continue
		}
		orders = append(orders, *order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders
}

func (s *Server) orderHistory(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sendJSONResponse(ctx, http.StatusOK, s.collectOrders(currentUserID(ctx), false, nil))
}

func (s *Server) allOrders(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sendJSONResponse(ctx, http.StatusOK, s.collectOrders(0, true, nil))
}

func (s *Server) ordersByStatus(ctx *gin.Context) {
	var req orderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	status, ok := models.ParseOrderStatus(req.Status)
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status: "+req.Status)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sendJSONResponse(ctx, http.StatusOK, s.collectOrders(currentUserID(ctx), isAdmin(ctx), &status))
}

func (s *Server) orderDetails(ctx *gin.Context) {
	var req orderIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, exists := s.orders[req.OrderID]
	if !exists || (!isAdmin(ctx) && order.UserID != currentUserID(ctx)) {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, *order)
}

func (s *Server) updateOrderStatus(ctx *gin.Context) {
	var req updateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	status, ok := models.ParseOrderStatus(req.Status)
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status: "+req.Status)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, exists := s.orders[req.OrderID]
	if !exists {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}
	if order.Status.IsTerminal() {
		sendErrorResponse(ctx, http.StatusBadRequest,
			fmt.Sprintf("Cannot change status of a %s order", order.Status))
		return
	}
	if !order.Status.CanTransitionTo(status) {
		sendErrorResponse(ctx, http.StatusBadRequest,
			fmt.Sprintf("Invalid status transition from %s to %s", order.Status, status))
		return
	}

	order.Status = status
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated"})
}

func (s *Server) cancelOrder(ctx *gin.Context) {
	var req orderIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, exists := s.orders[req.OrderID]
	if !exists || order.UserID != currentUserID(ctx) {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}
	if !order.CanCancel() {
		sendErrorResponse(ctx, http.StatusBadRequest, "Only pending orders can be cancelled")
		return
	}

	order.Status = models.OrderCancelled
	// Cancelled stock goes back on the shelf.
	for key, quantity := range order.Items {
		itemID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		if item, found := s.items[itemID]; found {
			item.Quantity += quantity
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order cancelled"})
}
