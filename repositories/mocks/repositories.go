package mocks

import (
	"github.com/cherki-hamza/vigile-parent-backend/models"

	"github.com/stretchr/testify/mock"
)

// Мок-реализации репозиториев для тестов сервисов

type ParentRepository struct {
	mock.Mock
}

func (m *ParentRepository) FindByID(id uint) (models.Parent, error) {
	args := m.Called(id)
	return args.Get(0).(models.Parent), args.Error(1)
}

func (m *ParentRepository) FindByEmail(email string) (models.Parent, error) {
	args := m.Called(email)
	return args.Get(0).(models.Parent), args.Error(1)
}

func (m *ParentRepository) CountByEmail(email string, count *int64) error {
	args := m.Called(email, count)
	return args.Error(0)
}

func (m *ParentRepository) Save(parent models.Parent) (models.Parent, error) {
	args := m.Called(parent)
	return args.Get(0).(models.Parent), args.Error(1)
}

type ChildRepository struct {
	mock.Mock
}

func (m *ChildRepository) FindByID(id uint) (models.Child, error) {
	args := m.Called(id)
	return args.Get(0).(models.Child), args.Error(1)
}

func (m *ChildRepository) FindByParentID(parentID uint) ([]models.Child, error) {
	args := m.Called(parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Child), args.Error(1)
}

func (m *ChildRepository) FirstByParentID(parentID uint) (models.Child, error) {
	args := m.Called(parentID)
	return args.Get(0).(models.Child), args.Error(1)
}

func (m *ChildRepository) Save(child models.Child) (models.Child, error) {
	args := m.Called(child)
	return args.Get(0).(models.Child), args.Error(1)
}

func (m *ChildRepository) Delete(child models.Child) error {
	args := m.Called(child)
	return args.Error(0)
}

type PairingCodeRepository struct {
	mock.Mock
}

func (m *PairingCodeRepository) FindByParentID(parentID uint) (models.PairingCode, error) {
	args := m.Called(parentID)
	return args.Get(0).(models.PairingCode), args.Error(1)
}

func (m *PairingCodeRepository) FindByCode(code string) (models.PairingCode, error) {
	args := m.Called(code)
	return args.Get(0).(models.PairingCode), args.Error(1)
}

func (m *PairingCodeRepository) FindByCodeAndParentID(code string, parentID uint) (models.PairingCode, error) {
	args := m.Called(code, parentID)
	return args.Get(0).(models.PairingCode), args.Error(1)
}

func (m *PairingCodeRepository) Save(pairingCode models.PairingCode) (models.PairingCode, error) {
	args := m.Called(pairingCode)
	return args.Get(0).(models.PairingCode), args.Error(1)
}

func (m *PairingCodeRepository) Consume(code string, parentID uint, childID uint) (bool, error) {
	args := m.Called(code, parentID, childID)
	return args.Bool(0), args.Error(1)
}

func (m *PairingCodeRepository) DeleteExpired() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
