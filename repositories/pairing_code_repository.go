package repositories

import "github.com/cherki-hamza/vigile-parent-backend/models"

type PairingCodeRepository interface {
	FindByParentID(parentID uint) (models.PairingCode, error)
	FindByCode(code string) (models.PairingCode, error)
	FindByCodeAndParentID(code string, parentID uint) (models.PairingCode, error)
	Save(pairingCode models.PairingCode) (models.PairingCode, error)
	// Consume помечает код использованным одним условным UPDATE
	// (used = false в WHERE); возвращает false, если код уже использован.
	Consume(code string, parentID uint, childID uint) (bool, error)
	DeleteExpired() (int64, error)
}
