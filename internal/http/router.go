package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Joseluizbianchini/ZeFood/internal/http/handlers"
	"github.com/Joseluizbianchini/ZeFood/internal/http/middleware"
)

// BuildRouter mounts the public auth surface and the session-protected
// order and customer endpoints.
func BuildRouter(ah *handlers.AuthHandlers, ch *handlers.CustomerHandlers, oh *handlers.OrderHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/login", ah.Login)
	auth.POST("/register", ah.Register)
	auth.POST("/forgot-password", ah.ForgotPassword)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.POST("/clientes", ch.Create)

	v := r.Group("/auth").Use(jwtmw.WithJWT())
	v.POST("/logout", ah.Logout)
	v.POST("/pedido", oh.Create)
	v.POST("/email/enviar-pedido", oh.SendConfirmationEmail)
	v.GET("/clientes/:id", ch.GetByID)
	v.PUT("/clientes/:id", ch.Update)

	return r
}
