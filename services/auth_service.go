package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cherki-hamza/vigile-parent-backend/models"
	"github.com/cherki-hamza/vigile-parent-backend/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func jwtKey() []byte {
	key := os.Getenv("JWT_SECRET")
	if key == "" {
		key = "your_secret_key"
	}
	return []byte(key)
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService struct {
	ParentRepo repositories.ParentRepository
	Mailer     Mailer
}

func NewAuthService(parentRepo repositories.ParentRepository, mailer Mailer) *AuthService {
	return &AuthService{ParentRepo: parentRepo, Mailer: mailer}
}

func (s *AuthService) generateToken(parent models.Parent, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: parent.ID,
		Email:  parent.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

func (s *AuthService) Register(name, email, password string) (models.Parent, string, error) {
	var count int64
	if err := s.ParentRepo.CountByEmail(email, &count); err != nil {
		return models.Parent{}, "", err
	}
	if count > 0 {
		return models.Parent{}, "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Parent{}, "", err
	}

	parent := models.Parent{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}

	parent, err = s.ParentRepo.Save(parent)
	if err != nil {
		return models.Parent{}, "", err
	}

	// Письмо не влияет на результат регистрации
	if err := s.Mailer.Send(email, "Registration Successful",
		"Hi, Thank You For Choosing Vigil1, You have successfully registered."); err != nil {
		log.Printf("Failed to send registration email to %s: %v", email, err)
	}

	token, err := s.generateToken(parent, 1*time.Hour)
	if err != nil {
		return models.Parent{}, "", err
	}

	return parent, token, nil
}

// Login не различает неизвестный email и неверный пароль.
// Непустой deviceToken сохраняется для последующих FCM-уведомлений.
func (s *AuthService) Login(email, password, deviceToken string) (models.Parent, string, error) {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		return models.Parent{}, "", mapNotFound(err, ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(parent.Password), []byte(password)); err != nil {
		return models.Parent{}, "", ErrInvalidCredentials
	}

	if deviceToken != "" && deviceToken != parent.DeviceToken {
		parent.DeviceToken = deviceToken
		if parent, err = s.ParentRepo.Save(parent); err != nil {
			return models.Parent{}, "", err
		}
	}

	token, err := s.generateToken(parent, 10*time.Hour)
	if err != nil {
		return models.Parent{}, "", err
	}

	return parent, token, nil
}

func (s *AuthService) RequestPasswordReset(email string) error {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		return mapNotFound(err, ErrNotFound)
	}

	resetToken, err := generateSixDigitCode()
	if err != nil {
		return err
	}

	parent.SetResetToken(resetToken)
	if _, err := s.ParentRepo.Save(parent); err != nil {
		return err
	}

	if err := s.Mailer.Send(email, "Password Reset Request",
		fmt.Sprintf("Your password reset code is %s", resetToken)); err != nil {
		log.Printf("Failed to send password reset email to %s: %v", email, err)
	}

	return nil
}

func (s *AuthService) VerifyResetOTP(email, otp string) error {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		return mapNotFound(err, ErrInvalidOTP)
	}

	if !parent.IsResetTokenValid(otp) {
		return ErrInvalidOTP
	}

	return nil
}

func (s *AuthService) ResetPassword(email, otp, newPassword string) error {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		return mapNotFound(err, ErrInvalidOTP)
	}

	if !parent.IsResetTokenValid(otp) {
		return ErrInvalidOTP
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	parent.Password = string(hashedPassword)
	parent.ClearResetToken()

	if _, err := s.ParentRepo.Save(parent); err != nil {
		return err
	}

	return nil
}
