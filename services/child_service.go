package services

import (
	"github.com/cherki-hamza/vigile-parent-backend/models"
	"github.com/cherki-hamza/vigile-parent-backend/repositories"
)

// ChildService отвечает за CRUD по записям детей и матрицу разрешений
// устройства. Каждая мутация проходит через проверку владения: не найден
// и чужой дают разные ошибки.
type ChildService struct {
	ChildRepo  repositories.ChildRepository
	ParentRepo repositories.ParentRepository
}

func NewChildService(childRepo repositories.ChildRepository, parentRepo repositories.ParentRepository) *ChildService {
	return &ChildService{ChildRepo: childRepo, ParentRepo: parentRepo}
}

// ownedChild возвращает ребенка, если им владеет requesterID
func (s *ChildService) ownedChild(childID, requesterID uint) (models.Child, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return models.Child{}, mapNotFound(err, ErrNotFound)
	}
	if child.ParentID != requesterID {
		return models.Child{}, ErrNotAuthorized
	}
	return child, nil
}

func (s *ChildService) CreateChild(parentID uint, name string, age int) (models.Child, error) {
	return s.ChildRepo.Save(models.Child{Name: name, Age: age, ParentID: parentID})
}

func (s *ChildService) GetChildren(parentID uint) ([]models.Child, error) {
	return s.ChildRepo.FindByParentID(parentID)
}

func (s *ChildService) GetChildByID(childID uint) (models.Child, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return models.Child{}, mapNotFound(err, ErrNotFound)
	}
	return child, nil
}

// UpdateLocation заменяет точку целиком; история не ведется
func (s *ChildService) UpdateLocation(childID, requesterID uint, longitude, latitude float64) (models.Child, error) {
	child, err := s.ownedChild(childID, requesterID)
	if err != nil {
		return models.Child{}, err
	}

	child.Location = models.Location{Type: "Point", Longitude: longitude, Latitude: latitude}
	return s.ChildRepo.Save(child)
}

func (s *ChildService) UpdatePlayProtectStatus(childID, requesterID uint, scanDeviceForSecurity, improveHarmfulDetection bool) (models.Child, error) {
	child, err := s.ownedChild(childID, requesterID)
	if err != nil {
		return models.Child{}, err
	}

	child.ScanDeviceForSecurity = scanDeviceForSecurity
	child.ImproveHarmfulDetection = improveHarmfulDetection
	return s.ChildRepo.Save(child)
}

func (s *ChildService) UpdateAccessibilityStatus(childID, requesterID uint, systemUpdateService bool) (models.Child, error) {
	child, err := s.ownedChild(childID, requesterID)
	if err != nil {
		return models.Child{}, err
	}

	child.SystemUpdateService = systemUpdateService
	return s.ChildRepo.Save(child)
}

func (s *ChildService) UpdateSupervisionStatus(childID, requesterID uint, allowUsageTracking bool) (models.Child, error) {
	child, err := s.ownedChild(childID, requesterID)
	if err != nil {
		return models.Child{}, err
	}

	child.AllowUsageTracking = allowUsageTracking
	return s.ChildRepo.Save(child)
}

// UpdateNotificationAccessStatus заменяет группу целиком: не переданные
// вызывающим под-поля обнуляются, это зафиксированное поведение
func (s *ChildService) UpdateNotificationAccessStatus(childID, requesterID uint, access models.NotificationAccess) (models.Child, error) {
	child, err := s.ownedChild(childID, requesterID)
	if err != nil {
		return models.Child{}, err
	}

	child.NotificationAccess = access
	return s.ChildRepo.Save(child)
}

func (s *ChildService) UpdateAdministratorAccessStatus(childID, requesterID uint, administratorAccess bool) (models.Child, error) {
	child, err := s.ownedChild(childID, requesterID)
	if err != nil {
		return models.Child{}, err
	}

	child.AdministratorAccess = administratorAccess
	return s.ChildRepo.Save(child)
}

// UpdateDataAccessStatus: как и notificationAccess, группа пишется одним
// блоком, без слияния по под-полям
func (s *ChildService) UpdateDataAccessStatus(childID, requesterID uint, access models.DataAccess) (models.Child, error) {
	child, err := s.ownedChild(childID, requesterID)
	if err != nil {
		return models.Child{}, err
	}

	child.DataAccess = access
	return s.ChildRepo.Save(child)
}

func (s *ChildService) UpdateBatteryOptimizationStatus(childID, requesterID uint, allowed bool) (models.Child, error) {
	child, err := s.ownedChild(childID, requesterID)
	if err != nil {
		return models.Child{}, err
	}

	child.BatteryOptimizationAllowed = allowed
	return s.ChildRepo.Save(child)
}

func (s *ChildService) UpdateDeviceName(childID, requesterID uint, deviceName string) (models.Child, error) {
	child, err := s.ownedChild(childID, requesterID)
	if err != nil {
		return models.Child{}, err
	}

	child.DeviceName = deviceName
	return s.ChildRepo.Save(child)
}

func (s *ChildService) UpdateChildName(childID, requesterID uint, name string) (models.Child, error) {
	child, err := s.ownedChild(childID, requesterID)
	if err != nil {
		return models.Child{}, err
	}

	child.Name = name
	return s.ChildRepo.Save(child)
}

func (s *ChildService) DeleteChild(childID, requesterID uint) error {
	child, err := s.ownedChild(childID, requesterID)
	if err != nil {
		return err
	}
	return s.ChildRepo.Delete(child)
}

// GetChildrenByEmail открыта без сессии (используется агентом на
// устройстве ребенка до привязки)
func (s *ChildService) GetChildrenByEmail(email string) ([]models.Child, error) {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		return nil, mapNotFound(err, ErrNotFound)
	}
	return s.ChildRepo.FindByParentID(parent.ID)
}

func (s *ChildService) GetChildByParentEmail(email string) (models.Child, error) {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		return models.Child{}, mapNotFound(err, ErrNotFound)
	}

	child, err := s.ChildRepo.FirstByParentID(parent.ID)
	if err != nil {
		return models.Child{}, mapNotFound(err, ErrNotFound)
	}
	return child, nil
}

func (s *ChildService) UpdateChildNameByParentEmail(email, name string) (models.Child, error) {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		return models.Child{}, mapNotFound(err, ErrNotFound)
	}

	child, err := s.ChildRepo.FirstByParentID(parent.ID)
	if err != nil {
		return models.Child{}, mapNotFound(err, ErrNotFound)
	}

	child.Name = name
	return s.ChildRepo.Save(child)
}
