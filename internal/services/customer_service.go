package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// CustomerServiceImpl implements domain.CustomerService
type CustomerServiceImpl struct {
	customerRepo domain.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo domain.CustomerRepository) domain.CustomerService {
	return &CustomerServiceImpl{customerRepo: customerRepo}
}

// Create implements domain.CustomerService. All three fields are mandatory
// and the phone must normalize to 10 or 11 digits.
func (s *CustomerServiceImpl) Create(ctx context.Context, name, phone, email string) (*domain.Customer, error) {
	normalized, err := validateProfile(name, phone, email)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Phone: normalized,
		Email: strings.ToLower(strings.TrimSpace(email)),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customer, nil
}

// GetByID implements domain.CustomerService
func (s *CustomerServiceImpl) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// Update implements domain.CustomerService. Partial update is not
// supported: all three fields are re-validated and replaced together.
func (s *CustomerServiceImpl) Update(ctx context.Context, id, name, phone, email string) (*domain.Customer, error) {
	normalized, err := validateProfile(name, phone, email)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Phone: normalized,
		Email: strings.ToLower(strings.TrimSpace(email)),
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return s.customerRepo.FindByID(ctx, id)
}

// validateProfile checks the mandatory fields and returns the normalized
// phone (digits only, 10 or 11 of them).
func validateProfile(name, phone, email string) (string, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return "", domain.ErrInvalidInput
	}

	normalized := normalizePhone(phone)
	if len(normalized) < 10 || len(normalized) > 11 {
		return "", domain.ErrInvalidInput
	}

	return normalized, nil
}

// normalizePhone strips everything that is not a digit.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
