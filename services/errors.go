package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Ошибки уровня сервисов. Контроллеры сопоставляют их со статусами через
// errors.Is; все остальное уходит наружу как 500 без деталей.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPairingCode = errors.New("invalid or expired pairing code")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrNotAuthorized      = errors.New("user not authorized")
	ErrEmailTaken         = errors.New("user already exists")
)

// Просроченные коды наружу выглядят как невалидные, но внутри различимы.
var (
	ErrExpiredPairingCode = fmt.Errorf("%w: expired", ErrInvalidPairingCode)
	ErrExpiredOTP         = fmt.Errorf("%w: expired", ErrInvalidOTP)
)

// mapNotFound переводит отсутствие записи в клиентскую ошибку; сбой
// хранилища (обрыв соединения и т.п.) отдается как есть и уходит
// наружу как 500, а не как неверные учетные данные.
func mapNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
