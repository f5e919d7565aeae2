package service

import (
	"context"
	"strings"

	"movie-rental-backend/internal/domain"
	"movie-rental-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func validateCustomer(name, phone string) error {
	name = strings.TrimSpace(name)
	if len(name) < 5 || len(name) > 50 {
		return domain.NewValidationError("name must be between 5 and 50 characters")
	}
	phone = strings.TrimSpace(phone)
	if len(phone) < 5 || len(phone) > 50 {
		return domain.NewValidationError("phone must be between 5 and 50 characters")
	}
	return nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) CreateCustomer(ctx context.Context, name, phone string, isGold bool) (*domain.Customer, error) {
	if err := validateCustomer(name, phone); err != nil {
		return nil, err
	}
	customer := &domain.Customer{Name: name, Phone: phone, IsGold: isGold}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id, name, phone string, isGold bool) (*domain.Customer, error) {
	if err := validateCustomer(name, phone); err != nil {
		return nil, err
	}
	customer := &domain.Customer{ID: id, Name: name, Phone: phone, IsGold: isGold}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return customer, nil
}
