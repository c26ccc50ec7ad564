package impl

import (
	"github.com/cherki-hamza/vigile-parent-backend/models"
	"github.com/cherki-hamza/vigile-parent-backend/repositories"

	"gorm.io/gorm"
)

type ParentRepositoryImpl struct {
	DB *gorm.DB
}

func NewParentRepository(db *gorm.DB) repositories.ParentRepository {
	return &ParentRepositoryImpl{DB: db}
}

func (r *ParentRepositoryImpl) FindByID(id uint) (models.Parent, error) {
	var parent models.Parent
	if err := r.DB.First(&parent, id).Error; err != nil {
		return models.Parent{}, err
	}
	return parent, nil
}

func (r *ParentRepositoryImpl) FindByEmail(email string) (models.Parent, error) {
	var parent models.Parent
	if err := r.DB.Where("email = ?", email).First(&parent).Error; err != nil {
		return models.Parent{}, err
	}
	return parent, nil
}

func (r *ParentRepositoryImpl) CountByEmail(email string, count *int64) error {
	return r.DB.Model(&models.Parent{}).Where("email = ?", email).Count(count).Error
}

func (r *ParentRepositoryImpl) Save(parent models.Parent) (models.Parent, error) {
	if err := r.DB.Save(&parent).Error; err != nil {
		return models.Parent{}, err
	}
	return parent, nil
}
