package sandbox

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ZeyadMahfouzz/supermarket-client/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func (s *Server) authenticate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing bearer token"})
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		userID, ok := claims["userId"].(float64)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			return
		}

		role, _ := claims["role"].(string)
		ctx.Set("userId", int64(userID))
		ctx.Set("role", role)
		ctx.Next()
	}
}

func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetString("role") != string(models.RoleAdmin) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		ctx.Next()
	}
}

func currentUserID(ctx *gin.Context) int64 {
	return ctx.GetInt64("userId")
}

func isAdmin(ctx *gin.Context) bool {
	return ctx.GetString("role") == string(models.RoleAdmin)
}
