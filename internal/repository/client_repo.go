package repository

import (
	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
)

var clientSortFields = map[string]string{
	"id":         "id",
	"name":       "name",
	"city":       "city",
	"country":    "country",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type ClientRepository interface {
	Create(client *model.Client) error
	FindAll(nameFilter string, sort Sort) ([]model.Client, error)
	FindByID(id uint) (*model.Client, error)
	Update(client *model.Client) error
	Delete(id uint) error
	CreateContact(contact *model.Contact) error
	DeleteContact(id uint) error
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db}
}

func (r *clientRepo) Create(client *model.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepo) FindAll(nameFilter string, sort Sort) ([]model.Client, error) {
	var clients []model.Client

	q := r.db.Model(&model.Client{}).Preload("Contacts")
	q = applyContains(q, "name", nameFilter)
	q = applySort(q, clientSortFields, sort)

	err := q.Find(&clients).Error
	return clients, err
}

func (r *clientRepo) FindByID(id uint) (*model.Client, error) {
	var client model.Client
	err := r.db.Preload("Contacts").First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) Update(client *model.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepo) Delete(id uint) error {
	// Contacts are owned exclusively by the client.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&model.Contact{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Client{}, id).Error
	})
}

func (r *clientRepo) CreateContact(contact *model.Contact) error {
	return r.db.Create(contact).Error
}

func (r *clientRepo) DeleteContact(id uint) error {
	return r.db.Delete(&model.Contact{}, id).Error
}
