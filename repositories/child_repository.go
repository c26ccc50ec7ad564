package repositories

import "github.com/cherki-hamza/vigile-parent-backend/models"

type ChildRepository interface {
	FindByID(id uint) (models.Child, error)
	FindByParentID(parentID uint) ([]models.Child, error)
	FirstByParentID(parentID uint) (models.Child, error)
	Save(child models.Child) (models.Child, error)
	Delete(child models.Child) error
}
