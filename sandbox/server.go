// Package sandbox is an in-memory stand-in for the supermarket gateway and
// its services. It exists for local development and for integration tests;
// the real backend owns persistence, payment processing and order lifecycle
// authority.
package sandbox

import (
	"sync"
	"time"

	"github.com/ZeyadMahfouzz/supermarket-client/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type user struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         models.Role
}

type cartLine struct {
	CartItemID int64
	ItemID     int64
	Quantity   int
}

type Server struct {
	secret []byte

	mu           sync.Mutex
	users        map[int64]*user
	usersByEmail map[string]int64
	items        map[int64]*models.Item
	carts        map[int64][]cartLine
	orders       map[int64]*models.Order

	nextUserID     int64
	nextItemID     int64
	nextCartItemID int64
	nextOrderID    int64
	nextPaymentID  int64

	router *gin.Engine
}

func New(secret string) *Server {
	server := &Server{
		secret:       []byte(secret),
		users:        make(map[int64]*user),
		usersByEmail: make(map[string]int64),
		items:        make(map[int64]*models.Item),
		carts:        make(map[int64][]cartLine),
		orders:       make(map[int64]*models.Order),
	}
	server.seed()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-User-Id", "X-User-Role"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.registerRoutes(router)
	server.router = router
	return server
}

func (s *Server) Router() *gin.Engine {
	return s.router
}
