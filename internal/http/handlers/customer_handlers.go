package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// CustomerHandlers handles customer profile HTTP requests
type CustomerHandlers struct {
	customerSvc domain.CustomerService
}

// NewCustomerHandlers creates new customer handlers
func NewCustomerHandlers(customerSvc domain.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{customerSvc: customerSvc}
}

// CustomerPayload carries the customer fields on the wire
type CustomerPayload struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

// CreateCustomerRequest wraps the payload the way the mobile client sends it
type CreateCustomerRequest struct {
	DadosCliente CustomerPayload `json:"dadosCliente" binding:"required"`
}

func customerJSON(customer *domain.Customer) gin.H {
	return gin.H{
		"id":       customer.ID,
		"nome":     customer.Name,
		"telefone": customer.Phone,
		"email":    customer.Email,
	}
}

// Create handles POST /auth/clientes
func (h *CustomerHandlers) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dados do cliente inválidos ou incompletos"})
		return
	}

	customer, err := h.customerSvc.Create(c.Request.Context(), req.DadosCliente.Nome, req.DadosCliente.Telefone, req.DadosCliente.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Dados do cliente inválidos ou incompletos"})
			return
		}
		log.Printf("CUSTOMER_CREATE_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Dados do cliente registrados com sucesso!",
		"dados":   customerJSON(customer),
	})
}

// GetByID handles GET /auth/clientes/:id
func (h *CustomerHandlers) GetByID(c *gin.Context) {
	id := c.Param("id")

	customer, err := h.customerSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cliente não encontrado"})
			return
		}
		log.Printf("CUSTOMER_GET_FAILED: id=%s error=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao buscar cliente"})
		return
	}

	c.JSON(http.StatusOK, customerJSON(customer))
}

// Update handles PUT /auth/clientes/:id. Partial update is not supported:
// all three fields must come in the body.
func (h *CustomerHandlers) Update(c *gin.Context) {
	id := c.Param("id")

	var req CustomerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Campos obrigatórios ausentes"})
		return
	}

	customer, err := h.customerSvc.Update(c.Request.Context(), id, req.Nome, req.Telefone, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Campos obrigatórios ausentes"})
		case errors.Is(err, domain.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Cliente não encontrado"})
		default:
			log.Printf("CUSTOMER_UPDATE_FAILED: id=%s error=%v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro no servidor"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dados atualizados com sucesso",
		"cliente": customerJSON(customer),
	})
}
