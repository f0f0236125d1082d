package sandbox

import (
	"net/http"
	"sort"

	"github.com/ZeyadMahfouzz/supermarket-client/models"
	"github.com/gin-gonic/gin"
)

type itemIDRequest struct {
	ID int64 `json:"id" binding:"required"`
}

func (s *Server) listItems(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	sendJSONResponse(ctx, http.StatusOK, items)
}

// itemDetails reads the item id from the request body; the items service
// exposes no path-parameter lookup.
func (s *Server) itemDetails(ctx *gin.Context) {
	var req itemIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[req.ID]
	if !exists {
		sendErrorResponse(ctx, http.StatusNotFound, msgItemNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, *item)
}

func (s *Server) createItem(ctx *gin.Context) {
	var item models.Item
	if err := ctx.ShouldBindJSON(&item); err != nil || item.Name == "" || item.Price < 0 || item.Quantity < 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextItemID++
	item.ID = s.nextItemID
	s.items[item.ID] = &item

	sendJSONResponse(ctx, http.StatusCreated, item)
}

func (s *Server) updateItem(ctx *gin.Context) {
	var item models.Item
	if err := ctx.ShouldBindJSON(&item); err != nil || item.ID == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, exists := s.items[item.ID]
	if !exists {
		sendErrorResponse(ctx, http.StatusNotFound, msgItemNotFound)
		return
	}
	*existing = item

	sendJSONResponse(ctx, http.StatusOK, item)
}

func (s *Server) deleteItem(ctx *gin.Context) {
	var req itemIDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[req.ID]; !exists {
		sendErrorResponse(ctx, http.StatusNotFound, msgItemNotFound)
		return
	}
	delete(s.items, req.ID)

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item deleted"})
}
