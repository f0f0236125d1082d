package sandbox

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ZeyadMahfouzz/supermarket-client/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.usersByEmail[email]; exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserExists)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create account")
		return
	}

	s.nextUserID++
	account := &user{
		ID:           s.nextUserID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	s.users[account.ID] = account
	s.usersByEmail[email] = account.ID

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (s *Server) login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.usersByEmail[strings.ToLower(strings.TrimSpace(req.Email))]
	if !exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}
	account := s.users[id]

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	token, err := s.generateToken(account)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": token})
}

func (s *Server) generateToken(account *user) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": account.ID,
		"sub":    account.Email,
		"name":   account.Name,
		"role":   string(account.Role),
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(s.secret)
}
