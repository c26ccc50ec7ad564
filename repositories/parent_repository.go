package repositories

import "github.com/cherki-hamza/vigile-parent-backend/models"

type ParentRepository interface {
	FindByID(id uint) (models.Parent, error)
	FindByEmail(email string) (models.Parent, error)
	CountByEmail(email string, count *int64) error
	Save(parent models.Parent) (models.Parent, error)
}
