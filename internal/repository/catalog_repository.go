package repository

import (
	"github.com/masterdu/masterdu-backend/internal/jsonstore"
	"github.com/masterdu/masterdu-backend/internal/model"
)

type ServiceRepository interface {
	GetAll() ([]model.ServiceItem, error)
	SaveAll(items []model.ServiceItem) error
	SaveOne(item model.ServiceItem) error
	DeleteOne(id string) error
	FindByID(id string) (*model.ServiceItem, error)
}

type serviceRepository struct {
	items *jsonstore.Collection[model.ServiceItem]
}

func NewServiceRepository(dataDir string) ServiceRepository {
	return &serviceRepository{
		items: jsonstore.NewCollection[model.ServiceItem](dataDir, "services.json"),
	}
}

func (r *serviceRepository) GetAll() ([]model.ServiceItem, error) {
	return r.items.Load()
}

func (r *serviceRepository) SaveAll(items []model.ServiceItem) error {
	return r.items.Save(items)
}

func (r *serviceRepository) SaveOne(item model.ServiceItem) error {
	items, err := r.items.Load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return r.items.Save(items)
}

func (r *serviceRepository) DeleteOne(id string) error {
	items, err := r.items.Load()
	if err != nil {
		return err
	}
	filtered := items[:0]
	for _, it := range items {
		if it.ID != id {
			filtered = append(filtered, it)
		}
	}
	return r.items.Save(filtered)
}

func (r *serviceRepository) FindByID(id string) (*model.ServiceItem, error) {
	items, err := r.items.Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

type CourseRepository interface {
	GetAll() ([]model.CourseItem, error)
	SaveAll(items []model.CourseItem) error
	SaveOne(item model.CourseItem) error
	DeleteOne(id string) error
	FindByID(id string) (*model.CourseItem, error)
}

type courseRepository struct {
	items *jsonstore.Collection[model.CourseItem]
}

func NewCourseRepository(dataDir string) CourseRepository {
	return &courseRepository{
		items: jsonstore.NewCollection[model.CourseItem](dataDir, "courses.json"),
	}
}

func (r *courseRepository) GetAll() ([]model.CourseItem, error) {
	return r.items.Load()
}

func (r *courseRepository) SaveAll(items []model.CourseItem) error {
	return r.items.Save(items)
}

func (r *courseRepository) SaveOne(item model.CourseItem) error {
	items, err := r.items.Load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return r.items.Save(items)
}

func (r *courseRepository) DeleteOne(id string) error {
	items, err := r.items.Load()
	if err != nil {
		return err
	}
	filtered := items[:0]
	for _, it := range items {
		if it.ID != id {
			filtered = append(filtered, it)
		}
	}
	return r.items.Save(filtered)
}

func (r *courseRepository) FindByID(id string) (*model.CourseItem, error) {
	items, err := r.items.Load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}
