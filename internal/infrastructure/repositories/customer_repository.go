package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Joseluizbianchini/ZeFood/domain"
)

// CustomerRepositoryImpl implements domain.CustomerRepository using GORM
type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// DBCustomer represents the database model for a customer profile
type DBCustomer struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"size:255"`
	Phone     string `gorm:"index;size:32"`
	Email     string `gorm:"index;size:255"`
	UserID    *uint  `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBCustomer) TableName() string {
	return "customers"
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

// Create implements domain.CustomerRepository
func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *domain.Customer) error {
	dbCustomer := r.domainToDB(customer)
	if err := r.db.WithContext(ctx).Create(dbCustomer).Error; err != nil {
		return err
	}
	customer.CreatedAt = dbCustomer.CreatedAt
	customer.UpdatedAt = dbCustomer.UpdatedAt
	return nil
}

// FindByID implements domain.CustomerRepository
func (r *CustomerRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	var dbCustomer DBCustomer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbCustomer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbCustomer), nil
}

// Update implements domain.CustomerRepository
func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *domain.Customer) error {
	res := r.db.WithContext(ctx).Model(&DBCustomer{}).Where("id = ?", customer.ID).Updates(map[string]interface{}{
		"name":  customer.Name,
		"phone": customer.Phone,
		"email": customer.Email,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// domainToDB converts domain customer to database customer
func (r *CustomerRepositoryImpl) domainToDB(customer *domain.Customer) *DBCustomer {
	return &DBCustomer{
		ID:     customer.ID,
		Name:   customer.Name,
		Phone:  customer.Phone,
		Email:  customer.Email,
		UserID: customer.UserID,
	}
}

// dbToDomain converts database customer to domain customer
func (r *CustomerRepositoryImpl) dbToDomain(dbCustomer *DBCustomer) *domain.Customer {
	return &domain.Customer{
		ID:        dbCustomer.ID,
		Name:      dbCustomer.Name,
		Phone:     dbCustomer.Phone,
		Email:     dbCustomer.Email,
		UserID:    dbCustomer.UserID,
		CreatedAt: dbCustomer.CreatedAt,
		UpdatedAt: dbCustomer.UpdatedAt,
	}
}
