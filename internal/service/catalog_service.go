package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/internal/repository"
	"github.com/masterdu/masterdu-backend/pkg/logger"
)

// ErrMissingFields is returned when a CMS save lacks the name or
// description equivalents every catalog record must carry.
var ErrMissingFields = errors.New("required fields are missing")

// CatalogService owns the services and courses collections.
// Filtering stays client-side; the API always serves full snapshots.
type CatalogService interface {
	ListServices() ([]model.ServiceItem, error)
	SaveServices(items []model.ServiceItem) error
	SaveService(item model.ServiceItem) (*model.ServiceItem, error)
	DeleteService(id string) error

	ListCourses() ([]model.CourseItem, error)
	SaveCourses(items []model.CourseItem) error
	SaveCourse(item model.CourseItem) (*model.CourseItem, error)
	DeleteCourse(id string) error
}

type catalogService struct {
	serviceRepo repository.ServiceRepository
	courseRepo  repository.CourseRepository
}

func NewCatalogService(serviceRepo repository.ServiceRepository, courseRepo repository.CourseRepository) CatalogService {
	return &catalogService{
		serviceRepo: serviceRepo,
		courseRepo:  courseRepo,
	}
}

func (s *catalogService) ListServices() ([]model.ServiceItem, error) {
	return s.serviceRepo.GetAll()
}

func (s *catalogService) SaveServices(items []model.ServiceItem) error {
	return s.serviceRepo.SaveAll(items)
}

func (s *catalogService) SaveService(item model.ServiceItem) (*model.ServiceItem, error) {
	if item.Name == "" || item.Description == "" {
		return nil, ErrMissingFields
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := s.serviceRepo.SaveOne(item); err != nil {
		logger.Error("Failed to save service", err, map[string]interface{}{
			"service_id": item.ID,
		})
		return nil, err
	}
	logger.Info("Service saved", map[string]interface{}{
		"service_id": item.ID,
		"name":       item.Name,
	})
	return &item, nil
}

func (s *catalogService) DeleteService(id string) error {
	return s.serviceRepo.DeleteOne(id)
}

func (s *catalogService) ListCourses() ([]model.CourseItem, error) {
	return s.courseRepo.GetAll()
}

func (s *catalogService) SaveCourses(items []model.CourseItem) error {
	return s.courseRepo.SaveAll(items)
}

func (s *catalogService) SaveCourse(item model.CourseItem) (*model.CourseItem, error) {
	if item.Name == "" || item.Description == "" {
		return nil, ErrMissingFields
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := s.courseRepo.SaveOne(item); err != nil {
		logger.Error("Failed to save course", err, map[string]interface{}{
			"course_id": item.ID,
		})
		return nil, err
	}
	logger.Info("Course saved", map[string]interface{}{
		"course_id": item.ID,
		"name":      item.Name,
	})
	return &item, nil
}

func (s *catalogService) DeleteCourse(id string) error {
	return s.courseRepo.DeleteOne(id)
}
