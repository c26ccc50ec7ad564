package impl

import (
	"time"

	"github.com/cherki-hamza/vigile-parent-backend/models"
	"github.com/cherki-hamza/vigile-parent-backend/repositories"

	"gorm.io/gorm"
)

type PairingCodeRepositoryImpl struct {
	DB *gorm.DB
}

func NewPairingCodeRepository(db *gorm.DB) repositories.PairingCodeRepository {
	return &PairingCodeRepositoryImpl{DB: db}
}

func (r *PairingCodeRepositoryImpl) FindByParentID(parentID uint) (models.PairingCode, error) {
	var pairingCode models.PairingCode
	if err := r.DB.Where("parent_id = ?", parentID).First(&pairingCode).Error; err != nil {
		return models.PairingCode{}, err
	}
	return pairingCode, nil
}

func (r *PairingCodeRepositoryImpl) FindByCode(code string) (models.PairingCode, error) {
	var pairingCode models.PairingCode
	if err := r.DB.Where("code = ?", code).First(&pairingCode).Error; err != nil {
		return models.PairingCode{}, err
	}
	return pairingCode, nil
}

func (r *PairingCodeRepositoryImpl) FindByCodeAndParentID(code string, parentID uint) (models.PairingCode, error) {
	var pairingCode models.PairingCode
	if err := r.DB.Where("code = ? AND parent_id = ?", code, parentID).First(&pairingCode).Error; err != nil {
		return models.PairingCode{}, err
	}
	return pairingCode, nil
}

func (r *PairingCodeRepositoryImpl) Save(pairingCode models.PairingCode) (models.PairingCode, error) {
	if err := r.DB.Save(&pairingCode).Error; err != nil {
		return models.PairingCode{}, err
	}
	return pairingCode, nil
}

// Consume делает условный UPDATE вместо find+save: гонку двух одновременных
// привязок по одному коду закрывает база, а не приложение.
func (r *PairingCodeRepositoryImpl) Consume(code string, parentID uint, childID uint) (bool, error) {
	result := r.DB.Model(&models.PairingCode{}).
		Where("code = ? AND parent_id = ? AND used = ?", code, parentID, false).
		Updates(map[string]interface{}{"used": true, "child_id": childID})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// DeleteExpired играет роль TTL-индекса Mongo; проверка срока при верификации
// остается основной.
func (r *PairingCodeRepositoryImpl) DeleteExpired() (int64, error) {
	result := r.DB.Where("expires_at <= ?", time.Now()).Delete(&models.PairingCode{})
	return result.RowsAffected, result.Error
}
