package repository

import (
	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
)

type DockRepository interface {
	Create(dock *model.Dock) error
	FindAll() ([]model.Dock, error)
	FindByID(id uint) (*model.Dock, error)
	Update(dock *model.Dock) error
	Delete(id uint) (bool, error)
	Count() (int64, error)
}

type dockRepo struct {
	db *gorm.DB
}

func NewDockRepo(db *gorm.DB) DockRepository {
	return &dockRepo{db}
}

func (r *dockRepo) Create(dock *model.Dock) error {
	return r.db.Create(dock).Error
}

func (r *dockRepo) FindAll() ([]model.Dock, error) {
	var docks []model.Dock
	err := r.db.Order("id ASC").Find(&docks).Error
	return docks, err
}

func (r *dockRepo) FindByID(id uint) (*model.Dock, error) {
	var dock model.Dock
	err := r.db.First(&dock, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dock, nil
}

func (r *dockRepo) Update(dock *model.Dock) error {
	return r.db.Save(dock).Error
}

// Delete reports whether a row was actually removed.
func (r *dockRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&model.Dock{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *dockRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Dock{}).Count(&count).Error
	return count, err
}
