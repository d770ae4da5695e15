package service

import (
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/apperr"
)

type ClientService interface {
	ListClients(nameFilter string, sort repository.Sort) ([]model.Client, error)
	GetClientByID(id uint) (*model.Client, error)
	CreateClient(client *model.Client) error
	UpdateClient(id uint, client *model.Client) (*model.Client, error)
	DeleteClient(id uint) error
	AddContact(clientID uint, contact *model.Contact) error
	DeleteContact(id uint) error
}

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(cRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: cRepo}
}

func (s *clientService) ListClients(nameFilter string, sort repository.Sort) ([]model.Client, error) {
	return s.clientRepo.FindAll(nameFilter, sort)
}

func (s *clientService) GetClientByID(id uint) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("client", id)
		}
		return nil, apperr.Internal(err)
	}
	return client, nil
}

func (s *clientService) CreateClient(client *model.Client) error {
	if err := validateInput(client); err != nil {
		return err
	}
	if err := s.clientRepo.Create(client); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *clientService) UpdateClient(id uint, req *model.Client) (*model.Client, error) {
	existing, err := s.clientRepo.FindByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, apperr.NotFound("client", id)
		}
		return nil, apperr.Internal(err)
	}

	existing.Name = req.Name
	existing.Address = req.Address
	existing.City = req.City
	existing.Country = req.Country

	if err := validateInput(existing); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Update(existing); err != nil {
		return nil, apperr.Internal(err)
	}
	return existing, nil
}

func (s *clientService) DeleteClient(id uint) error {
	if err := s.clientRepo.Delete(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *clientService) AddContact(clientID uint, contact *model.Contact) error {
	if _, err := s.clientRepo.FindByID(clientID); err != nil {
		if isRecordNotFound(err) {
			return apperr.NotFound("client", clientID)
		}
		return apperr.Internal(err)
	}

	contact.ClientID = clientID
	if err := validateInput(contact); err != nil {
		return err
	}
	if err := s.clientRepo.CreateContact(contact); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *clientService) DeleteContact(id uint) error {
	if err := s.clientRepo.DeleteContact(id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
