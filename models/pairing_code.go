package models

import "time"

// PairingCode хранит код привязки устройства. У каждого родителя не больше
// одной активной записи (uniqueIndex на parent_id): повторный запрос
// обновляет код и срок действия, а не создает новую строку.
type PairingCode struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	Code      string    `json:"code" gorm:"size:6;index"`
	ParentID  uint      `json:"parentId" gorm:"uniqueIndex;not null"`
	ChildID   *uint     `json:"childId"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `json:"used"`
}

func (pc *PairingCode) IsExpired() bool {
	return !time.Now().Before(pc.ExpiresAt)
}

// Refresh обновляет код привязки со сроком действия 1 час
func (pc *PairingCode) Refresh(code string) {
	pc.Code = code
	pc.ExpiresAt = time.Now().Add(1 * time.Hour)
	pc.Used = false
	pc.ChildID = nil
}
