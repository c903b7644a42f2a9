package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joseluizbianchini/ZeFood/internal/config"
	httpx "github.com/Joseluizbianchini/ZeFood/internal/http"
	"github.com/Joseluizbianchini/ZeFood/internal/http/handlers"
	"github.com/Joseluizbianchini/ZeFood/internal/http/middleware"
	"github.com/Joseluizbianchini/ZeFood/internal/infrastructure/database"
)

// Run wires the whole service and blocks serving HTTP.
func Run(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := database.AutoMigrate(container.DB); err != nil {
		return err
	}
	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(container.AuthSvc)
	customerH := handlers.NewCustomerHandlers(container.CustomerSvc)
	orderH := handlers.NewOrderHandlers(container.OrderSvc, container.Mailer)

	jwtMW := middleware.NewAuthMW(container.TokenSvc, container.SessionRepo)

	r := httpx.BuildRouter(authH, customerH, orderH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
