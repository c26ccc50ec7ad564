package models

import "time"

type Parent struct {
	ID       uint   `json:"id" gorm:"primary_key"`
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`

	// Одноразовый код для привязки устройства (10 минут)
	OTP          string     `json:"-" gorm:"size:6"`
	OTPExpiresAt *time.Time `json:"-"`

	// Код сброса пароля (1 час)
	ResetPasswordToken   string     `json:"-" gorm:"size:6"`
	ResetPasswordExpires *time.Time `json:"-"`

	DeviceToken string `json:"device_token"`
}

func (p *Parent) IsOTPValid(otp string) bool {
	return p.OTP != "" && p.OTP == otp && p.OTPExpiresAt != nil && time.Now().Before(*p.OTPExpiresAt)
}

// SetOTP устанавливает новый код со сроком действия 10 минут
func (p *Parent) SetOTP(otp string) {
	p.OTP = otp
	expiresAt := time.Now().Add(10 * time.Minute)
	p.OTPExpiresAt = &expiresAt
}

// ClearOTP сбрасывает код сразу после использования
func (p *Parent) ClearOTP() {
	p.OTP = ""
	p.OTPExpiresAt = nil
}

func (p *Parent) IsResetTokenValid(token string) bool {
	return p.ResetPasswordToken != "" && p.ResetPasswordToken == token &&
		p.ResetPasswordExpires != nil && time.Now().Before(*p.ResetPasswordExpires)
}

func (p *Parent) SetResetToken(token string) {
	p.ResetPasswordToken = token
	expiresAt := time.Now().Add(1 * time.Hour)
	p.ResetPasswordExpires = &expiresAt
}

func (p *Parent) ClearResetToken() {
	p.ResetPasswordToken = ""
	p.ResetPasswordExpires = nil
}
