package impl

import (
	"github.com/cherki-hamza/vigile-parent-backend/models"
	"github.com/cherki-hamza/vigile-parent-backend/repositories"

	"gorm.io/gorm"
)

type ChildRepositoryImpl struct {
	DB *gorm.DB
}

func NewChildRepository(db *gorm.DB) repositories.ChildRepository {
	return &ChildRepositoryImpl{DB: db}
}

func (r *ChildRepositoryImpl) FindByID(id uint) (models.Child, error) {
	var child models.Child
	if err := r.DB.First(&child, id).Error; err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (r *ChildRepositoryImpl) FindByParentID(parentID uint) ([]models.Child, error) {
	var children []models.Child
	if err := r.DB.Where("parent_id = ?", parentID).Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

func (r *ChildRepositoryImpl) FirstByParentID(parentID uint) (models.Child, error) {
	var child models.Child
	if err := r.DB.Where("parent_id = ?", parentID).First(&child).Error; err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (r *ChildRepositoryImpl) Save(child models.Child) (models.Child, error) {
	if err := r.DB.Save(&child).Error; err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (r *ChildRepositoryImpl) Delete(child models.Child) error {
	return r.DB.Delete(&child).Error
}
