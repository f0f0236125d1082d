package sandbox

import "github.com/gin-gonic/gin"

const (
	msgInvalidInput       = "Invalid input"
	msgUserExists         = "An account with this email already exists"
	msgInvalidCredentials = "Invalid email or password"
	msgItemNotFound       = "Item not found"
	msgCartItemNotFound   = "Cart item not found"
	msgCartEmpty          = "Cart is empty"
	msgOrderNotFound      = "Order not found"
)

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}
