package service

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/apperr"
)

type OrderLineInput struct {
	ItemUID string `json:"item_uid" validate:"required"`
	Amount  int    `json:"amount" validate:"required,gt=0"`
}

type CreateOrderInput struct {
	Reference string           `json:"reference"`
	ClientID  *uint            `json:"client_id"`
	Status    string           `json:"status"`
	Items     []OrderLineInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderInput patches the order header; lines are fixed at creation.
type UpdateOrderInput struct {
	Reference *string `json:"reference"`
	ClientID  *uint   `json:"client_id"`
	Status    *string `json:"status"`
}

type OrderService interface {
	ListOrders(filter repository.OrderFilter, sort repository.Sort) ([]model.Order, error)
	GetOrderByID(id uint) (*model.Order, error)
	CreateOrder(input *CreateOrderInput) (*model.Order, error)
	UpdateOrder(id uint, input *UpdateOrderInput) error
	DeleteOrder(id uint) error
}

type orderService struct {
	orderRepo  repository.OrderRepository
	itemRepo   repository.ItemRepository
	clientRepo repository.ClientRepository
}

func NewOrderService(oRepo repository.OrderRepository, iRepo repository.ItemRepository, cRepo repository.ClientRepository) OrderService {
	return &orderService{
		orderRepo:  oRepo,
		itemRepo:   iRepo,
		clientRepo: cRepo,
	}
}

func (s *orderService) ListOrders(filter repository.OrderFilter, sort repository.Sort) ([]model.Order, error) {
	return s.orderRepo.FindAll(filter, sort)
}

func (s *orderService) GetOrderByID(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("order", id)
		}
		return nil, apperr.Internal(err)
	}
	return order, nil
}

func (s *orderService) CreateOrder(input *CreateOrderInput) (*model.Order, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	for _, line := range input.Items {
		if _, err := s.itemRepo.FindByUID(line.ItemUID); err != nil {
			if isRecordNotFound(err) {
				return nil, apperr.NotFound("item", line.ItemUID)
			}
			return nil, apperr.Internal(err)
		}
	}

	if input.ClientID != nil {
		if _, err := s.clientRepo.FindByID(*input.ClientID); err != nil {
			if isRecordNotFound(err) {
				return nil, apperr.NotFound("client", *input.ClientID)
			}
			return nil, apperr.Internal(err)
		}
	}

	order := &model.Order{
		Reference: input.Reference,
		ClientID:  input.ClientID,
		Status:    input.Status,
	}
	for _, line := range input.Items {
		order.Items = append(order.Items, model.OrderItem{
			ItemUID: line.ItemUID,
			Amount:  line.Amount,
		})
	}

	if err := s.orderRepo.Create(nil, order); err != nil {
		return nil, apperr.Internal(err)
	}
	return order, nil
}

func (s *orderService) UpdateOrder(id uint, input *UpdateOrderInput) error {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return apperr.NotFound("order", id)
		}
		return apperr.Internal(err)
	}

	if input.Reference != nil {
		order.Reference = *input.Reference
	}
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.ClientID != nil {
		if *input.ClientID == 0 {
			order.ClientID = nil
		} else {
			if _, err := s.clientRepo.FindByID(*input.ClientID); err != nil {
				if isRecordNotFound(err) {
					return apperr.NotFound("client", *input.ClientID)
				}
				return apperr.Internal(err)
			}
			order.ClientID = input.ClientID
		}
	}

	if err := s.orderRepo.Update(order); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *orderService) DeleteOrder(id uint) error {
	if err := s.orderRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
