package services

import (
	"context"

	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/repositories"
)

type CustomerServiceInterface interface {
	GetCustomers(ctx context.Context, activeOnly bool, limit uint64) ([]dto.CustomerDTO, error)
	FindCustomer(ctx context.Context, id uint64) (*dto.CustomerDTO, error)
	CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*dto.CustomerDTO, error)
	UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*dto.CustomerDTO, error)
	DeleteCustomer(ctx context.Context, id uint64) error
}

type CustomerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	logger       *zap.Logger
}

func NewCustomerService(customerRepo repositories.CustomerRepositoryInterface, logger *zap.Logger) CustomerServiceInterface {
	return &CustomerService{customerRepo: customerRepo, logger: logger}
}

func (s *CustomerService) GetCustomers(ctx context.Context, activeOnly bool, limit uint64) ([]dto.CustomerDTO, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, activeOnly, limit)
	if err != nil {
		return nil, err
	}
	return mapCustomersToDTO(customers), nil
}

func (s *CustomerService) FindCustomer(ctx context.Context, id uint64) (*dto.CustomerDTO, error) {
	customer, err := s.customerRepo.FindCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	out := mapCustomerToDTO(*customer)
	return &out, nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, payload dto.CreateCustomerDTO) (*dto.CustomerDTO, error) {
	id, err := s.customerRepo.CreateCustomer(ctx, payload)
	if err != nil {
		s.logger.Error("Ошибка создания клиента", zap.Error(err))
		return nil, err
	}
	return s.FindCustomer(ctx, id)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint64, payload dto.UpdateCustomerDTO) (*dto.CustomerDTO, error) {
	if err := s.customerRepo.UpdateCustomer(ctx, id, payload); err != nil {
		return nil, err
	}
	return s.FindCustomer(ctx, id)
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint64) error {
	return s.customerRepo.SoftDeleteCustomer(ctx, id)
}
