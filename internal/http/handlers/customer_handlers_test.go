package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Joseluizbianchini/ZeFood/domain"
	"github.com/Joseluizbianchini/ZeFood/internal/mocks"
)

func TestCustomerHandlers_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*mocks.MockCustomerService)
		expectedStatus int
	}{
		{
			name: "successful creation",
			requestBody: CreateCustomerRequest{
				DadosCliente: CustomerPayload{Nome: "Maria", Telefone: "11987654321", Email: "maria@example.com"},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing wrapper",
			requestBody:    gin.H{"nome": "Maria"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid profile",
			requestBody: CreateCustomerRequest{
				DadosCliente: CustomerPayload{Nome: "", Telefone: "123", Email: "x@y.com"},
			},
			setupMocks: func(customerSvc *mocks.MockCustomerService) {
				customerSvc.CreateFunc = func(ctx context.Context, name, phone, email string) (*domain.Customer, error) {
					return nil, domain.ErrInvalidInput
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customerSvc := mocks.NewMockCustomerService()
			if tt.setupMocks != nil {
				tt.setupMocks(customerSvc)
			}
			h := NewCustomerHandlers(customerSvc)
			router := gin.New()
			router.POST("/auth/clientes", h.Create)

			w := performJSON(t, router, http.MethodPost, "/auth/clientes", tt.requestBody)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus == http.StatusCreated {
				body := decodeBody(t, w)
				dados, ok := body["dados"].(map[string]interface{})
				if !ok {
					t.Fatal("expected a dados object")
				}
				if dados["nome"] != "Maria" {
					t.Errorf("expected nome Maria, got %v", dados["nome"])
				}
				if dados["id"] == "" {
					t.Error("expected a customer id")
				}
			}
		})
	}
}

func TestCustomerHandlers_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	customerSvc := mocks.NewMockCustomerService()
	customerSvc.GetByIDFunc = func(ctx context.Context, id string) (*domain.Customer, error) {
		if id == "cust-1" {
			return &domain.Customer{ID: "cust-1", Name: "Maria", Phone: "11987654321", Email: "maria@example.com"}, nil
		}
		return nil, domain.ErrCustomerNotFound
	}
	h := NewCustomerHandlers(customerSvc)
	router := gin.New()
	router.GET("/auth/clientes/:id", h.GetByID)

	t.Run("found", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/auth/clientes/cust-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["telefone"] != "11987654321" {
			t.Errorf("expected telefone 11987654321, got %v", body["telefone"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/auth/clientes/missing", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})
}

func TestCustomerHandlers_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		id             string
		requestBody    interface{}
		setupMocks     func(*mocks.MockCustomerService)
		expectedStatus int
	}{
		{
			name:           "successful update",
			id:             "cust-1",
			requestBody:    CustomerPayload{Nome: "Maria Souza", Telefone: "11912345678", Email: "souza@example.com"},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "missing fields",
			id:          "cust-1",
			requestBody: CustomerPayload{Nome: "", Telefone: "", Email: ""},
			setupMocks: func(customerSvc *mocks.MockCustomerService) {
				customerSvc.UpdateFunc = func(ctx context.Context, id, name, phone, email string) (*domain.Customer, error) {
					return nil, domain.ErrInvalidInput
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "unknown customer",
			id:          "missing",
			requestBody: CustomerPayload{Nome: "Maria", Telefone: "11987654321", Email: "maria@example.com"},
			setupMocks: func(customerSvc *mocks.MockCustomerService) {
				customerSvc.UpdateFunc = func(ctx context.Context, id, name, phone, email string) (*domain.Customer, error) {
					return nil, domain.ErrCustomerNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customerSvc := mocks.NewMockCustomerService()
			if tt.setupMocks != nil {
				tt.setupMocks(customerSvc)
			}
			h := NewCustomerHandlers(customerSvc)
			router := gin.New()
			router.PUT("/auth/clientes/:id", h.Update)

			w := performJSON(t, router, http.MethodPut, "/auth/clientes/"+tt.id, tt.requestBody)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
