package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cherki-hamza/vigile-parent-backend/models"
	"github.com/cherki-hamza/vigile-parent-backend/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PairingService выдает коды привязки и обменивает их на запись ребенка.
type PairingService struct {
	ParentRepo      repositories.ParentRepository
	ChildRepo       repositories.ChildRepository
	PairingCodeRepo repositories.PairingCodeRepository
	Mailer          Mailer
	Pusher          Pusher
}

func NewPairingService(
	parentRepo repositories.ParentRepository,
	childRepo repositories.ChildRepository,
	pairingCodeRepo repositories.PairingCodeRepository,
	mailer Mailer,
	pusher Pusher,
) *PairingService {
	return &PairingService{
		ParentRepo:      parentRepo,
		ChildRepo:       childRepo,
		PairingCodeRepo: pairingCodeRepo,
		Mailer:          mailer,
		Pusher:          pusher,
	}
}

// GeneratePairingCode обновляет существующую запись кода на месте или
// создает первую: на родителя всегда одна строка.
func (s *PairingService) GeneratePairingCode(parentID uint) (string, error) {
	code, err := generateSixDigitCode()
	if err != nil {
		return "", err
	}

	pairingCode, err := s.PairingCodeRepo.FindByParentID(parentID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
		pairingCode = models.PairingCode{
			Code:      code,
			ParentID:  parentID,
			ExpiresAt: time.Now().Add(1 * time.Hour),
		}
	} else {
		pairingCode.Refresh(code)
	}

	if _, err := s.PairingCodeRepo.Save(pairingCode); err != nil {
		return "", err
	}

	return code, nil
}

// PairDevice обменивает код привязки на новую запись ребенка.
func (s *PairingService) PairDevice(email, password, code, name string, age int) (models.Child, error) {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		return models.Child{}, mapNotFound(err, ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(parent.Password), []byte(password)); err != nil {
		return models.Child{}, ErrInvalidCredentials
	}

	pairingCode, err := s.PairingCodeRepo.FindByCodeAndParentID(code, parent.ID)
	if err != nil {
		return models.Child{}, mapNotFound(err, ErrInvalidPairingCode)
	}
	if pairingCode.IsExpired() {
		return models.Child{}, ErrExpiredPairingCode
	}
	if pairingCode.Used {
		return models.Child{}, ErrInvalidPairingCode
	}

	child, err := s.ChildRepo.Save(models.Child{Name: name, Age: age, ParentID: parent.ID})
	if err != nil {
		return models.Child{}, err
	}

	// Код гасится условным UPDATE; проигравший гонку откатывает
	// только что созданную запись и получает отказ.
	consumed, err := s.PairingCodeRepo.Consume(code, parent.ID, child.ID)
	if err != nil {
		return models.Child{}, err
	}
	if !consumed {
		if err := s.ChildRepo.Delete(child); err != nil {
			log.Printf("Failed to roll back child %d after lost consume race: %v", child.ID, err)
		}
		return models.Child{}, ErrInvalidPairingCode
	}

	s.notifyPaired(parent, child)

	return child, nil
}

// VerifyPairingCode проверяет код без гашения (read-only)
func (s *PairingService) VerifyPairingCode(email, code string) error {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		return mapNotFound(err, ErrNotFound)
	}

	pairingCode, err := s.PairingCodeRepo.FindByCodeAndParentID(code, parent.ID)
	if err != nil {
		return mapNotFound(err, ErrInvalidPairingCode)
	}
	if pairingCode.IsExpired() {
		return ErrExpiredPairingCode
	}

	return nil
}

// CheckPairingCodeStatus это публичная операция для поллера на стороне
// ребенка, владение не проверяется.
func (s *PairingService) CheckPairingCodeStatus(code string) (bool, error) {
	pairingCode, err := s.PairingCodeRepo.FindByCode(code)
	if err != nil {
		return false, mapNotFound(err, ErrNotFound)
	}
	return pairingCode.Used, nil
}

// LoginAndSendOTP аутентифицирует родителя и отправляет OTP на email.
// Неизвестный email и неверный пароль не различаются, состояние OTP при
// отказе не меняется.
func (s *PairingService) LoginAndSendOTP(email, password string) error {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		return mapNotFound(err, ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(parent.Password), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	otp, err := generateSixDigitCode()
	if err != nil {
		return err
	}

	parent.SetOTP(otp)
	if _, err := s.ParentRepo.Save(parent); err != nil {
		return err
	}

	// Сохраненный OTP остается действительным, даже если письмо не ушло
	if err := s.Mailer.Send(parent.Email, "Your OTP Code",
		fmt.Sprintf("Your OTP code is %s", otp)); err != nil {
		log.Printf("Failed to send OTP email to %s: %v", parent.Email, err)
	}

	return nil
}

// VerifyOTPAndPairDevice обменивает OTP на новую запись ребенка.
// Поля OTP очищаются до создания записи, чтобы исключить повтор.
func (s *PairingService) VerifyOTPAndPairDevice(email, otp, name string, age int) (models.Child, error) {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		return models.Child{}, mapNotFound(err, ErrInvalidOTP)
	}

	if parent.OTP == "" || parent.OTP != otp {
		return models.Child{}, ErrInvalidOTP
	}
	if parent.OTPExpiresAt == nil || !time.Now().Before(*parent.OTPExpiresAt) {
		return models.Child{}, ErrExpiredOTP
	}

	parent.ClearOTP()
	if _, err := s.ParentRepo.Save(parent); err != nil {
		return models.Child{}, err
	}

	child, err := s.ChildRepo.Save(models.Child{Name: name, Age: age, ParentID: parent.ID})
	if err != nil {
		// OTP уже погашен; ошибку создания не глотаем
		return models.Child{}, fmt.Errorf("OTP consumed but child creation failed: %w", err)
	}

	s.notifyPaired(parent, child)

	return child, nil
}

func (s *PairingService) notifyPaired(parent models.Parent, child models.Child) {
	if s.Pusher == nil {
		return
	}
	err := s.Pusher.SendToDevice(parent.DeviceToken, "Device paired",
		fmt.Sprintf("%s's device is now linked to your account", child.Name),
		map[string]string{"child_id": fmt.Sprintf("%d", child.ID)})
	if err != nil {
		log.Printf("Failed to push pairing notification to parent %d: %v", parent.ID, err)
	}
}
