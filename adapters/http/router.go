package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the user routes onto the engine. The /users/me route
// is registered before /users/:id so the static segment wins.
func RegisterRoutes(r *gin.Engine, h *UserHandler, authMW gin.HandlerFunc) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	users := r.Group("/users")
	{
		users.GET("", h.GetAllUsers)
		users.GET("/me", authMW, h.GetCurrentUser)
		users.GET("/:id", h.GetUserByID)
		users.POST("/register", h.RegisterUser)
		users.POST("/login", h.LoginUser)
		users.PUT("/:id", h.UpdateUserWithID)
		users.DELETE("/:id", h.DeleteUserWithID)
	}
}
