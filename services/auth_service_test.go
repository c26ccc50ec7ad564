package services

import (
	"errors"
	"testing"
	"time"

	"github.com/cherki-hamza/vigile-parent-backend/models"
	"github.com/cherki-hamza/vigile-parent-backend/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	parentRepo := new(mocks.ParentRepository)
	service := NewAuthService(parentRepo, new(mockMailer))

	parentRepo.On("CountByEmail", "a@x.com", mock.AnythingOfType("*int64")).
		Run(func(args mock.Arguments) {
			*args.Get(1).(*int64) = 1
		}).Return(nil)

	_, _, err := service.Register("Jane", "a@x.com", "secret123")

	assert.ErrorIs(t, err, ErrEmailTaken)
	parentRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestRegisterHashesPasswordAndSendsMail(t *testing.T) {
	parentRepo := new(mocks.ParentRepository)
	mailer := new(mockMailer)
	service := NewAuthService(parentRepo, mailer)

	parentRepo.On("CountByEmail", "a@x.com", mock.AnythingOfType("*int64")).Return(nil)
	parentRepo.On("Save", mock.MatchedBy(func(p models.Parent) bool {
		// В базу уходит только bcrypt-хэш
		return p.Email == "a@x.com" && p.Password != "secret123" &&
			bcrypt.CompareHashAndPassword([]byte(p.Password), []byte("secret123")) == nil
	})).Return(models.Parent{ID: 1, Name: "Jane", Email: "a@x.com"}, nil)
	mailer.On("Send", "a@x.com", "Registration Successful", mock.Anything).Return(nil)

	_, token, err := service.Register("Jane", "a@x.com", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	parentRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestRegisterSurvivesMailFailure(t *testing.T) {
	parentRepo := new(mocks.ParentRepository)
	mailer := new(mockMailer)
	service := NewAuthService(parentRepo, mailer)

	parentRepo.On("CountByEmail", "a@x.com", mock.AnythingOfType("*int64")).Return(nil)
	parentRepo.On("Save", mock.Anything).Return(models.Parent{ID: 1, Email: "a@x.com"}, nil)
	mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	_, token, err := service.Register("Jane", "a@x.com", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginDoesNotRevealWhichCredentialIsWrong(t *testing.T) {
	parentRepo := new(mocks.ParentRepository)
	service := NewAuthService(parentRepo, new(mockMailer))

	parent := models.Parent{ID: 1, Email: "a@x.com", Password: hashPassword(t, "secret123")}
	parentRepo.On("FindByEmail", "a@x.com").Return(parent, nil)
	parentRepo.On("FindByEmail", "nobody@x.com").Return(models.Parent{}, gorm.ErrRecordNotFound)

	_, _, badPassword := service.Login("a@x.com", "wrongpw", "")
	_, _, badEmail := service.Login("nobody@x.com", "secret123", "")

	assert.ErrorIs(t, badPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, badEmail, ErrInvalidCredentials)
	assert.Equal(t, badPassword, badEmail)
}

func TestLoginSuccessReturnsToken(t *testing.T) {
	parentRepo := new(mocks.ParentRepository)
	service := NewAuthService(parentRepo, new(mockMailer))

	parent := models.Parent{ID: 1, Name: "Jane", Email: "a@x.com", Password: hashPassword(t, "secret123")}
	parentRepo.On("FindByEmail", "a@x.com").Return(parent, nil)

	got, token, err := service.Login("a@x.com", "secret123", "")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(1), got.ID)
}

// Непустой deviceToken при логине сохраняется и служит адресом пушей
func TestLoginStoresDeviceToken(t *testing.T) {
	parentRepo := new(mocks.ParentRepository)
	service := NewAuthService(parentRepo, new(mockMailer))

	parent := models.Parent{ID: 1, Email: "a@x.com", Password: hashPassword(t, "secret123")}
	saved := parent
	saved.DeviceToken = "fcm-token-1"
	parentRepo.On("FindByEmail", "a@x.com").Return(parent, nil)
	parentRepo.On("Save", mock.MatchedBy(func(p models.Parent) bool {
		return p.ID == 1 && p.DeviceToken == "fcm-token-1"
	})).Return(saved, nil).Once()

	got, _, err := service.Login("a@x.com", "secret123", "fcm-token-1")

	assert.NoError(t, err)
	assert.Equal(t, "fcm-token-1", got.DeviceToken)
	parentRepo.AssertExpectations(t)
}

// Сбой хранилища не выдается за неверные учетные данные
func TestLoginStorageFailurePassesThrough(t *testing.T) {
	parentRepo := new(mocks.ParentRepository)
	service := NewAuthService(parentRepo, new(mockMailer))

	dbErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	parentRepo.On("FindByEmail", "a@x.com").Return(models.Parent{}, dbErr)

	_, _, err := service.Login("a@x.com", "secret123", "")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordResetFlow(t *testing.T) {
	parentRepo := new(mocks.ParentRepository)
	mailer := new(mockMailer)
	service := NewAuthService(parentRepo, mailer)

	parent := models.Parent{ID: 1, Email: "a@x.com", Password: hashPassword(t, "oldpassword")}

	var savedToken string
	parentRepo.On("FindByEmail", "a@x.com").Return(parent, nil).Once()
	parentRepo.On("Save", mock.MatchedBy(func(p models.Parent) bool {
		savedToken = p.ResetPasswordToken
		return sixDigits.MatchString(p.ResetPasswordToken) && p.ResetPasswordExpires != nil
	})).Return(parent, nil).Once()
	mailer.On("Send", "a@x.com", "Password Reset Request", mock.Anything).Return(nil)

	assert.NoError(t, service.RequestPasswordReset("a@x.com"))

	// Дальше родитель в базе хранит выданный код
	expiresAt := time.Now().Add(time.Hour)
	withToken := parent
	withToken.ResetPasswordToken = savedToken
	withToken.ResetPasswordExpires = &expiresAt
	parentRepo.On("FindByEmail", "a@x.com").Return(withToken, nil)

	assert.NoError(t, service.VerifyResetOTP("a@x.com", savedToken))
	assert.ErrorIs(t, service.VerifyResetOTP("a@x.com", "000000"), ErrInvalidOTP)

	parentRepo.On("Save", mock.MatchedBy(func(p models.Parent) bool {
		return p.ResetPasswordToken == "" && p.ResetPasswordExpires == nil &&
			bcrypt.CompareHashAndPassword([]byte(p.Password), []byte("newpassword")) == nil
	})).Return(parent, nil).Once()

	assert.NoError(t, service.ResetPassword("a@x.com", savedToken, "newpassword"))
	parentRepo.AssertExpectations(t)
}
