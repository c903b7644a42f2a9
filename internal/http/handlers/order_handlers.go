package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// OrderHandlers handles order submission and order-email HTTP requests
type OrderHandlers struct {
	orderSvc domain.OrderService
	mailer   domain.Mailer
}

// NewOrderHandlers creates new order handlers
func NewOrderHandlers(orderSvc domain.OrderService, mailer domain.Mailer) *OrderHandlers {
	return &OrderHandlers{
		orderSvc: orderSvc,
		mailer:   mailer,
	}
}

// OrderPayload carries an order on the wire
type OrderPayload struct {
	ID           string            `json:"idPedido"`
	CustomerID   string            `json:"idCliente"`
	Items        []domain.LineItem `json:"itens"`
	DeliveryMode string            `json:"modoEntrega"`
}

// CreateOrderRequest wraps the payload the way the mobile client sends it
type CreateOrderRequest struct {
	Pedido OrderPayload `json:"pedido" binding:"required"`
}

// SendOrderEmailRequest represents an order-confirmation email request
type SendOrderEmailRequest struct {
	Nome        string          `json:"nome" binding:"required"`
	Email       string          `json:"email" binding:"required,email"`
	Pedido      OrderPayload    `json:"pedido" binding:"required"`
	ModoEntrega string          `json:"modoEntrega"`
	TotalFinal  decimal.Decimal `json:"totalFinal"`
}

func (p *OrderPayload) toDomain() *domain.Order {
	return &domain.Order{
		ID:           p.ID,
		CustomerID:   p.CustomerID,
		Items:        p.Items,
		DeliveryMode: domain.DeliveryMode(p.DeliveryMode),
	}
}

func orderJSON(order *domain.Order) gin.H {
	return gin.H{
		"idPedido":    order.ID,
		"idCliente":   order.CustomerID,
		"itens":       order.Items,
		"modoEntrega": order.DeliveryMode,
		"criadoEm":    order.CreatedAt,
	}
}

// Create handles POST /auth/pedido
func (h *OrderHandlers) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Pedido inválido ou vazio"})
		return
	}

	order, err := h.orderSvc.Submit(c.Request.Context(), req.Pedido.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidOrder):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Pedido inválido ou vazio"})
		case errors.Is(err, domain.ErrDuplicateOrder):
			c.JSON(http.StatusConflict, gin.H{"message": "Pedido já registrado"})
		default:
			log.Printf("ORDER_SUBMIT_FAILED: order_id=%s error=%v", req.Pedido.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Pedido registrado com sucesso!",
		"pedido":  orderJSON(order),
	})
}

// SendConfirmationEmail handles POST /auth/email/enviar-pedido. The order
// was already persisted by Create; a send failure here means "order saved,
// email failed" and never rolls the order back.
func (h *OrderHandlers) SendConfirmationEmail(c *gin.Context) {
	var req SendOrderEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados incompletos para enviar o email"})
		return
	}
	if len(req.Pedido.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados incompletos para enviar o email"})
		return
	}

	order := req.Pedido.toDomain()
	mode := domain.DeliveryMode(req.ModoEntrega)
	total := req.TotalFinal
	if total.IsZero() {
		total = domain.ComputeTotal(order.Items, mode)
	}

	if err := h.mailer.SendOrderConfirmation(req.Nome, req.Email, order, mode, total); err != nil {
		log.Printf("ORDER_EMAIL_FAILED: order_id=%s error=%v", order.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao enviar email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email enviado com sucesso!"})
}
